package script

import (
	"context"
	"fmt"

	"github.com/osse101/IdleHunt_Go/internal/domain"
	"github.com/osse101/IdleHunt_Go/internal/hunt"
	"github.com/osse101/IdleHunt_Go/internal/logger"
)

// Dispatcher executes parsed chat commands against the hunt service and
// renders player-facing reply lines.
type Dispatcher struct {
	bridge *Bridge
	svc    hunt.Service
}

// NewDispatcher creates a chat command dispatcher
func NewDispatcher(bridge *Bridge, svc hunt.Service) *Dispatcher {
	return &Dispatcher{bridge: bridge, svc: svc}
}

// HandleChat parses one chat line and executes it. handled is false when the
// text is not a hunt command; the caller passes it through unchanged.
func (d *Dispatcher) HandleChat(ctx context.Context, playerID int64, text string) (lines []string, handled bool, err error) {
	cmd, err := d.bridge.Parse(text)
	if err != nil {
		logger.FromContext(ctx).Warn("Chat command parse failed", "error", err)
		return nil, false, err
	}
	if cmd == nil {
		return nil, false, nil
	}

	lines, err = d.execute(ctx, playerID, cmd)
	return lines, true, err
}

func (d *Dispatcher) execute(ctx context.Context, playerID int64, cmd *Command) ([]string, error) {
	switch cmd.Action {
	case ActionTargets:
		targets, err := d.svc.GetAvailableTargets(ctx, playerID)
		if err != nil {
			return nil, err
		}
		lines := make([]string, 0, len(targets)+1)
		lines = append(lines, "Available hunting grounds:")
		for _, t := range targets {
			lines = append(lines, fmt.Sprintf("  [%d] %s (level %d+)", t.ID, t.DisplayName, t.MinLevel))
		}
		return lines, nil

	case ActionConfigure:
		target := domain.HuntTarget{Kind: domain.TargetKind(cmd.TargetKind), ID: cmd.TargetID}
		if _, err := d.svc.Configure(ctx, playerID, target); err != nil {
			return nil, err
		}
		return []string{"Hunt configured. It starts when you log out."}, nil

	case ActionClaim:
		result, err := d.svc.Claim(ctx, playerID)
		if err != nil {
			return nil, err
		}
		return result.Summary, nil

	case ActionStop:
		stopped, err := d.svc.Stop(ctx, playerID)
		if err != nil {
			return nil, err
		}
		if !stopped {
			return []string{"No hunt to stop."}, nil
		}
		return []string{"Hunt stopped. Unclaimed rewards were forfeited."}, nil

	case ActionStatus:
		status, err := d.svc.GetStatus(ctx, playerID)
		if err != nil {
			return nil, err
		}
		return []string{fmt.Sprintf("Hunt phase: %s. Time left today: %ds.", status.Phase, status.TimeLeft)}, nil

	default:
		return nil, fmt.Errorf("unknown hunt command action %q", cmd.Action)
	}
}
