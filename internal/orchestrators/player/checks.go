package player

import (
	"context"

	"github.com/KirkDiggler/fabula-api/internal/engine"
	"github.com/KirkDiggler/fabula-api/internal/entities"
	"github.com/KirkDiggler/fabula-api/internal/errors"
	"github.com/KirkDiggler/fabula-api/internal/services/player"
)

// RollCheck rolls the dice of two attributes of the scratch document.
// It is read-only, so viewers may roll too.
func (o *Orchestrator) RollCheck(ctx context.Context, input *player.RollCheckInput) (*player.RollCheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if !input.Attr1.Valid() {
		vb.Fieldf("attr1", "unknown attribute %q", input.Attr1)
	}
	if !input.Attr2.Valid() {
		vb.Fieldf("attr2", "unknown attribute %q", input.Attr2)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	session, err := o.loadSession(ctx, input.SessionID, input.UserID)
	if err != nil {
		return nil, err
	}

	result, err := o.engine.RollCheck(ctx, &engine.RollCheckInput{
		Die1:  dieOf(session.Scratch, input.Attr1),
		Die2:  dieOf(session.Scratch, input.Attr2),
		Bonus: input.Bonus,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll check")
	}

	return &player.RollCheckOutput{
		Attr1:  input.Attr1,
		Attr2:  input.Attr2,
		Result: result,
	}, nil
}

func dieOf(p *entities.Player, attr entities.Attribute) int {
	return p.Attributes[attr]
}
