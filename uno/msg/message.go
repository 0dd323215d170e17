package msg

import (
	"fmt"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func SeatName(seat int) string {
	return fmt.Sprintf("Player %d", seat+1)
}

func (m MessageWriter) Welcome() string {
	return fmt.Sprintf(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) Seated(seat int) string {
	return fmt.Sprintf("You are %s.", SeatName(seat))
}

func (m MessageWriter) WaitingForPlayers(connected int) string {
	return fmt.Sprintf("Waiting for players... %d/%d connected", connected, consts.Seats)
}

func (m MessageWriter) FirstCardPlayed(c card.Card) string {
	return fmt.Sprintf("First card is %s", c)
}

func (m MessageWriter) HumanPlayerTurnStarted() string {
	return "It's your turn!"
}

func (m MessageWriter) HumanPlayerHasNoMatchingCardsInHand(lastPlayedCard card.Card) string {
	return fmt.Sprintf("None of your cards match %s, press space to draw.", lastPlayedCard)
}

func (m MessageWriter) NotYourTurn(current int) string {
	return fmt.Sprintf("Wait for your turn, it's %s's.", SeatName(current))
}

func (m MessageWriter) PickColor() string {
	return fmt.Sprintf("Pick a color: 1 %s  2 %s  3 %s  4 %s  (esc to cancel)",
		color.Red, color.Green, color.Blue, color.Yellow)
}

func (m MessageWriter) PlayerDrewCards(seat int, amount int) string {
	if amount == 1 {
		return fmt.Sprintf("%s drew a card!", SeatName(seat))
	}
	return fmt.Sprintf("%s drew %d cards!", SeatName(seat), amount)
}

func (m MessageWriter) PlayerPassed(seat int) string {
	return fmt.Sprintf("%s passed!", SeatName(seat))
}

func (m MessageWriter) PlayerPickedColor(seat int, c color.Color) string {
	return fmt.Sprintf("%s picked color %s!", SeatName(seat), c)
}

func (m MessageWriter) PlayerPlayedCard(seat int, c card.Card) string {
	return fmt.Sprintf("%s played %s!", SeatName(seat), c)
}

func (m MessageWriter) PlayerTurnSkipped(seat int) string {
	return fmt.Sprintf("%s's turn skipped!", SeatName(seat))
}

func (m MessageWriter) TurnOrderReversed() string {
	return "Turn order has been reversed!"
}

func (m MessageWriter) WinnerFound(winner int, seat int) string {
	if winner == seat {
		return "You win!"
	}
	return fmt.Sprintf("%s wins!", SeatName(winner))
}

func (m MessageWriter) Disconnected() string {
	return "Disconnected from the server."
}

var errorTexts = map[consts.ErrorCode]string{
	consts.CodeInvalidAction:      "That card can't be played now.",
	consts.CodeNotYourTurn:        "It's not your turn.",
	consts.CodeInvalidCardIndex:   "You don't have that card.",
	consts.CodeInvalidColorChoice: "Pick red, green, blue or yellow for a wild card.",
}

// Error describes a rejected action to the player who sent it.
func (m MessageWriter) Error(code consts.ErrorCode) string {
	if text, ok := errorTexts[code]; ok {
		return text
	}
	return fmt.Sprintf("Error %d.", code)
}
