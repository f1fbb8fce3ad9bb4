package mana

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/magic-mana-engine/internal/domain/mana"
	manaerr "github.com/KirkDiggler/magic-mana-engine/internal/errors"
	"github.com/KirkDiggler/magic-mana-engine/internal/notify"
)

const (
	defaultPlayerName = "Player"
	defaultCardName   = "Card"
)

// CardPlay is a card that was just played to the table
type CardPlay struct {
	ActorID    string
	PlayerName string
	CardName   string
	Suit       string
	Value      int
}

// SpendFromCard spends Value mana of the card's suit and announces the result.
// Cards whose suit is not a primary color, or whose value is not positive,
// are ignored.
func (s *service) SpendFromCard(ctx context.Context, play *CardPlay) (bool, error) {
	if play == nil {
		return false, manaerr.InvalidArgument("card play cannot be nil")
	}
	if play.ActorID == "" {
		s.notifier.Notify(ctx, notify.LevelWarn, "No character is assigned to this player")
		return false, manaerr.InvalidArgument("actor ID is required")
	}

	key := mana.ColorKey(strings.ToUpper(strings.TrimSpace(play.Suit)))
	color, known := s.palette.Lookup(key)
	if !known || !color.Primary || play.Value <= 0 {
		log.Printf("ManaService: Ignoring card %q with suit %q value %d", play.CardName, play.Suit, play.Value)
		return false, nil
	}

	ok, err := s.Spend(ctx, play.ActorID, key, play.Value)
	if err != nil {
		return false, err
	}

	player := play.PlayerName
	if player == "" {
		player = defaultPlayerName
	}
	card := play.CardName
	if card == "" {
		card = defaultCardName
	}

	if ok {
		s.notifier.Notify(ctx, notify.LevelInfo,
			fmt.Sprintf("%s played %s and spent %d %s mana", player, card, play.Value, color.Name))
	} else {
		s.notifier.Notify(ctx, notify.LevelInfo,
			fmt.Sprintf("%s could not play %s: not enough %s mana", player, card, color.Name))
	}

	return ok, nil
}

// LongRest regenerates one slot per unlocked bar
func (s *service) LongRest(ctx context.Context, actorID string) ([]mana.ColorKey, error) {
	return s.RegenerateOneForAll(ctx, actorID)
}
