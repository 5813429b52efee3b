// Package schema validates imported player and weapon JSON documents
package schema

import (
	"bytes"
	"embed"
	"encoding/json"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/KirkDiggler/fabula-api/internal/entities"
	"github.com/KirkDiggler/fabula-api/internal/errors"
)

const (
	baseURL   = "https://fabula-api/schemas/"
	weaponURL = baseURL + "weapon.schema.json"
	playerURL = baseURL + "player.schema.json"
)

//go:embed schemas/*.schema.json
var files embed.FS

// Validator checks documents against the bundled JSON schemas
type Validator struct {
	weapon *jsonschema.Schema
	player *jsonschema.Schema
}

// New compiles the bundled schemas
func New() (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	for _, name := range []string{"weapon.schema.json", "player.schema.json"} {
		data, err := files.ReadFile("schemas/" + name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read schema %s", name)
		}
		if err := compiler.AddResource(baseURL+name, bytes.NewReader(data)); err != nil {
			return nil, errors.Wrapf(err, "failed to add schema %s", name)
		}
	}

	weapon, err := compiler.Compile(weaponURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compile weapon schema")
	}
	player, err := compiler.Compile(playerURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compile player schema")
	}

	return &Validator{weapon: weapon, player: player}, nil
}

// DecodeWeapon validates data against the weapon schema and decodes it
// Returns errors.InvalidArgument with per-location details when invalid
func (v *Validator) DecodeWeapon(data []byte) (*entities.Weapon, error) {
	if err := validate(v.weapon, data, "weapon"); err != nil {
		return nil, err
	}

	var weapon entities.Weapon
	if err := json.Unmarshal(data, &weapon); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode weapon")
	}
	return &weapon, nil
}

// DecodePlayer validates data against the player schema and decodes it
func (v *Validator) DecodePlayer(data []byte) (*entities.Player, error) {
	if err := validate(v.player, data, "player"); err != nil {
		return nil, err
	}

	var p entities.Player
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode player")
	}
	return &p, nil
}

// ValidatePlayer checks a stored player document
func (v *Validator) ValidatePlayer(data []byte) error {
	return validate(v.player, data, "player")
}

func validate(s *jsonschema.Schema, data []byte, kind string) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return errors.WrapWithCodef(err, errors.CodeInvalidArgument, "%s is not valid JSON", kind)
	}

	err := s.Validate(doc)
	if err == nil {
		return nil
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return errors.WrapWithCodef(err, errors.CodeInvalidArgument, "%s failed schema validation", kind)
	}

	leaves := leafErrors(ve, nil)
	if len(leaves) == 0 {
		return errors.InvalidArgumentf("%s failed schema validation: %s", kind, ve.Message)
	}

	vb := errors.NewValidationBuilder()
	for _, leaf := range leaves {
		location := leaf.InstanceLocation
		if location == "" {
			location = "/"
		}
		vb.Field(location, leaf.Message)
	}
	return vb.Build()
}

// leafErrors flattens the cause tree, keeping the entries that carry the actual failures.
func leafErrors(ve *jsonschema.ValidationError, out []*jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(ve.Causes) == 0 {
		return append(out, ve)
	}
	for _, cause := range ve.Causes {
		out = leafErrors(cause, out)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].InstanceLocation < out[j].InstanceLocation })
	return out
}
