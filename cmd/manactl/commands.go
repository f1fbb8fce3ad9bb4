package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/magic-mana-engine/internal/domain/mana"
	manaerr "github.com/KirkDiggler/magic-mana-engine/internal/errors"
	"github.com/KirkDiggler/magic-mana-engine/internal/repositories/pools"
	manaService "github.com/KirkDiggler/magic-mana-engine/internal/services/mana"
)

// listConcurrency bounds the state loads of the list command
const listConcurrency = 8

var errUsage = errors.New("invalid usage")

// app runs one manactl command against a service
type app struct {
	svc     manaService.Service
	repo    pools.Repository
	out     io.Writer
	actorID string
	caller  mana.Caller
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	command, args := args[0], args[1:]

	if command == "list" {
		return a.list(ctx)
	}
	if a.actorID == "" {
		return fmt.Errorf("%w: -actor is required", errUsage)
	}

	switch command {
	case "state":
		return a.printState(ctx)

	case "visuals":
		return a.visuals(ctx, args)

	case "config":
		cfg, err := a.svc.GetSlotConfig(ctx, a.actorID)
		if err != nil {
			return err
		}
		a.printConfig(cfg)
		return nil

	case "configure":
		return a.configure(ctx, args)

	case "toggle":
		if len(args) != 2 {
			return fmt.Errorf("%w: toggle COLOR INDEX", errUsage)
		}
		color, err := a.color(args[0])
		if err != nil {
			return err
		}
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("%w: index must be a number", errUsage)
		}
		if err := a.svc.ToggleSlot(ctx, a.caller, a.actorID, color, index); err != nil {
			return err
		}
		return a.printState(ctx)

	case "lock":
		if len(args) != 2 {
			return fmt.Errorf("%w: lock COLOR on|off", errUsage)
		}
		color, err := a.color(args[0])
		if err != nil {
			return err
		}
		locked, err := parseSwitch(args[1])
		if err != nil {
			return err
		}
		if err := a.svc.SetBarLocked(ctx, a.caller, a.actorID, color, locked); err != nil {
			return err
		}
		return a.printState(ctx)

	case "slotlock":
		if len(args) != 3 {
			return fmt.Errorf("%w: slotlock COLOR INDEX on|off", errUsage)
		}
		color, err := a.color(args[0])
		if err != nil {
			return err
		}
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("%w: index must be a number", errUsage)
		}
		locked, err := parseSwitch(args[2])
		if err != nil {
			return err
		}
		if err := a.svc.SetSlotLocked(ctx, a.caller, a.actorID, color, index, locked); err != nil {
			return err
		}
		return a.printState(ctx)

	case "activate", "deactivate":
		if len(args) != 1 {
			return fmt.Errorf("%w: %s COLOR", errUsage, command)
		}
		color, err := a.color(args[0])
		if err != nil {
			return err
		}
		pick := a.svc.ActivateNext
		if command == "deactivate" {
			pick = a.svc.DeactivateLast
		}
		index, err := pick(ctx, a.caller, a.actorID, color)
		if err != nil {
			return err
		}
		if index < 0 {
			fmt.Fprintf(a.out, "no slot to %s\n", command)
			return nil
		}
		fmt.Fprintf(a.out, "%sd slot %d\n", command, index)
		return nil

	case "spend":
		if len(args) != 2 {
			return fmt.Errorf("%w: spend COLOR AMOUNT", errUsage)
		}
		color, err := a.color(args[0])
		if err != nil {
			return err
		}
		amount, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("%w: amount must be a number", errUsage)
		}
		ok, err := a.svc.Spend(ctx, a.actorID, color, amount)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(a.out, "not enough mana")
			return nil
		}
		fmt.Fprintf(a.out, "spent %d\n", amount)
		return nil

	case "card":
		if len(args) < 2 {
			return fmt.Errorf("%w: card SUIT VALUE [NAME]", errUsage)
		}
		value, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("%w: value must be a number", errUsage)
		}
		ok, err := a.svc.SpendFromCard(ctx, &manaService.CardPlay{
			ActorID:    a.actorID,
			PlayerName: a.caller.UserID,
			CardName:   strings.Join(args[2:], " "),
			Suit:       args[0],
			Value:      value,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "paid: %t\n", ok)
		return nil

	case "rest":
		regenerated, err := a.svc.LongRest(ctx, a.actorID)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "regenerated: %s\n", joinKeys(regenerated))
		return nil

	case "purge":
		if !a.caller.Privileged {
			return manaerr.PermissionDenied("only the GM can purge a character")
		}
		if err := a.repo.Delete(ctx, a.actorID); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "purged %s\n", a.actorID)
		return nil
	}

	return fmt.Errorf("%w: unknown command %q", errUsage, command)
}

func (a *app) color(raw string) (mana.ColorKey, error) {
	key, ok := a.svc.Palette().ParseColorKey(raw)
	if !ok {
		return "", fmt.Errorf("%w: unknown color %q", errUsage, raw)
	}
	return key, nil
}

func (a *app) configure(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: configure COLOR=N ...", errUsage)
	}

	current, err := a.svc.GetSlotConfig(ctx, a.actorID)
	if err != nil {
		return err
	}

	input := make(map[mana.ColorKey]float64, len(current))
	for key, n := range current {
		input[key] = float64(n)
	}

	for _, arg := range args {
		rawKey, rawValue, found := strings.Cut(arg, "=")
		if !found {
			return fmt.Errorf("%w: expected COLOR=N, got %q", errUsage, arg)
		}
		key, err := a.color(rawKey)
		if err != nil {
			return err
		}
		value, err := strconv.ParseFloat(rawValue, 64)
		if err != nil {
			return fmt.Errorf("%w: %q is not a number", errUsage, rawValue)
		}
		input[key] = value
	}

	cfg, err := a.svc.SetSlotConfig(ctx, a.actorID, input)
	if err != nil {
		return err
	}
	a.printConfig(cfg)
	return nil
}

func (a *app) visuals(ctx context.Context, args []string) error {
	icons := make(map[mana.ColorKey]string)
	for _, arg := range args {
		rawKey, icon, found := strings.Cut(arg, "=")
		if !found {
			return fmt.Errorf("%w: expected COLOR=ICON, got %q", errUsage, arg)
		}
		key, err := a.color(rawKey)
		if err != nil {
			return err
		}
		icons[key] = icon
	}

	visuals, err := a.svc.BarVisuals(ctx, a.actorID, icons)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(visuals)
}

func (a *app) printState(ctx context.Context) error {
	state, err := a.svc.GetState(ctx, a.actorID)
	if err != nil {
		return err
	}

	for _, color := range a.svc.Palette() {
		bar := state[color.Key]
		if bar.Capacity() == 0 {
			continue
		}
		line := fmt.Sprintf("%s %-10s %s %d/%d", color.Key, color.Name, renderBar(bar), bar.Available(), bar.Capacity())
		if bar.BarLocked {
			line += " (locked)"
		}
		fmt.Fprintln(a.out, line)
	}
	return nil
}

func (a *app) printConfig(cfg mana.SlotConfig) {
	for _, color := range a.svc.Palette() {
		fmt.Fprintf(a.out, "%s %-10s %d\n", color.Key, color.Name, cfg[color.Key])
	}
}

// list prints every stored character with its available mana per color
func (a *app) list(ctx context.Context) error {
	ids, err := a.repo.ListActorIDs(ctx)
	if err != nil {
		return err
	}

	lines := make([]string, len(ids))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(listConcurrency)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			state, err := a.svc.GetState(gctx, id)
			if err != nil {
				return fmt.Errorf("load %s: %w", id, err)
			}
			line := summarize(a.svc.Palette(), id, state)

			mu.Lock()
			lines[i] = line
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, line := range lines {
		fmt.Fprintln(a.out, line)
	}
	return nil
}

func summarize(palette mana.Palette, id string, state mana.PoolState) string {
	parts := []string{id}
	for _, color := range palette {
		bar := state[color.Key]
		if bar.Capacity() == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s:%d/%d", color.Key, bar.Available(), bar.Capacity()))
	}
	return strings.Join(parts, " ")
}

// renderBar draws one character per slot: x active, . inactive, upper case
// or _ when the slot itself is locked
func renderBar(bar mana.Bar) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, active := range bar.Active {
		switch {
		case active && bar.SlotLocked[i]:
			b.WriteByte('X')
		case active:
			b.WriteByte('x')
		case bar.SlotLocked[i]:
			b.WriteByte('_')
		default:
			b.WriteByte('.')
		}
	}
	b.WriteByte(']')
	return b.String()
}

func parseSwitch(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("%w: expected on or off, got %q", errUsage, raw)
}

func joinKeys(keys []mana.ColorKey) string {
	if len(keys) == 0 {
		return "none"
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = string(k)
	}
	return strings.Join(parts, ",")
}
