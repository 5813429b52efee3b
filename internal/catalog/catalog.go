// Package catalog loads the class definitions players pick from.
package catalog

import (
	_ "embed"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/fabula-api/internal/entities"
	"github.com/KirkDiggler/fabula-api/internal/errors"
)

//go:generate mockgen -destination=mock/mock.go -package=catalogmock github.com/KirkDiggler/fabula-api/internal/catalog Catalog

//go:embed classes.yaml
var embeddedClasses []byte

// ClassDefinition is a class as published in a book.
type ClassDefinition struct {
	Name     string                 `json:"name" yaml:"name"`
	Book     string                 `json:"book" yaml:"book"`
	Benefits entities.ClassBenefits `json:"benefits" yaml:"benefits"`
}

// Catalog provides class lookups
type Catalog interface {
	// GetClass returns the class with the given name, matched case-insensitively
	GetClass(name string) (*ClassDefinition, error)

	// ListClasses returns classes in catalog order, filtered by book when book is not empty
	ListClasses(book string) []*ClassDefinition

	// Books returns the distinct books in catalog order
	Books() []string
}

type catalogFile struct {
	Classes []*ClassDefinition `yaml:"classes"`
}

type yamlCatalog struct {
	classes []*ClassDefinition
	byName  map[string]*ClassDefinition
}

// New loads the embedded class catalog
func New() (Catalog, error) {
	return Load(embeddedClasses)
}

// Load parses a class catalog from YAML
func Load(data []byte) (Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse class catalog")
	}

	c := &yamlCatalog{byName: make(map[string]*ClassDefinition, len(file.Classes))}
	for _, def := range file.Classes {
		vb := errors.NewValidationBuilder()
		errors.ValidateRequired("name", def.Name, vb)
		errors.ValidateRequired("book", def.Book, vb)
		if err := vb.Build(); err != nil {
			return nil, errors.Wrap(err, "invalid class definition")
		}

		key := strings.ToLower(def.Name)
		if _, exists := c.byName[key]; exists {
			return nil, errors.AlreadyExistsf("class %s defined twice", def.Name)
		}
		c.byName[key] = def
		c.classes = append(c.classes, def)
	}

	return c, nil
}

func (c *yamlCatalog) GetClass(name string) (*ClassDefinition, error) {
	def, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.NotFoundf("class %s not found", name).WithMeta("class_name", name)
	}
	return def.clone(), nil
}

func (c *yamlCatalog) ListClasses(book string) []*ClassDefinition {
	out := make([]*ClassDefinition, 0, len(c.classes))
	for _, def := range c.classes {
		if book != "" && def.Book != book {
			continue
		}
		out = append(out, def.clone())
	}
	return out
}

func (c *yamlCatalog) Books() []string {
	seen := make(map[string]struct{})
	var books []string
	for _, def := range c.classes {
		if _, ok := seen[def.Book]; ok {
			continue
		}
		seen[def.Book] = struct{}{}
		books = append(books, def.Book)
	}
	return books
}

func (d *ClassDefinition) clone() *ClassDefinition {
	out := *d
	out.Benefits = d.Benefits.Clone()
	return &out
}
