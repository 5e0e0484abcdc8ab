package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/player"
)

// Catalog holds the user-facing texts for one language.
type Catalog struct {
	Tag language.Tag

	Prompt      string
	Turn        string // %s is the mark to move
	Won         string // %s is the winning mark
	BotWon      string
	Draw        string
	BotThinking string
	InvalidMove string
	NotYourTurn string
	Help        string
}

var English = Catalog{
	Tag:         language.English,
	Prompt:      "Press start to play",
	Turn:        "%s to move",
	Won:         "🎉 Player %s wins!",
	BotWon:      "🤖 The bot wins!",
	Draw:        "😺 It's a draw!",
	BotThinking: "🤖 The bot is thinking...",
	InvalidMove: "That cell can't be played",
	NotYourTurn: "Wait for the bot to move",
	Help:        "Enter a cell 0-8, r to restart, q to quit",
}

var Thai = Catalog{
	Tag:         language.Thai,
	Prompt:      "กด เริ่มเกม เพื่อเล่น",
	Turn:        "%s ถึงตาเล่น",
	Won:         "🎉 ผู้เล่น %s ชนะ!",
	BotWon:      "🤖 บอทชนะ!",
	Draw:        "😺 เสมอกัน!",
	BotThinking: "🤖 บอทกำลังคิด...",
	InvalidMove: "ช่องนี้เล่นไม่ได้",
	NotYourTurn: "รอบอทเดินก่อน",
	Help:        "พิมพ์ช่อง 0-8, r เพื่อเริ่มใหม่, q เพื่อออก",
}

var (
	catalogs = []*Catalog{&English, &Thai}
	matcher  = language.NewMatcher([]language.Tag{English.Tag, Thai.Tag})
)

// Select returns the catalog best matching pref, which may be a BCP 47 tag or
// a POSIX locale such as "th_TH.UTF-8". English is the fallback.
func Select(pref string) *Catalog {
	if i := strings.IndexAny(pref, ".@"); i >= 0 {
		pref = pref[:i]
	}
	pref = strings.ReplaceAll(pref, "_", "-")

	_, index := language.MatchStrings(matcher, pref)
	return catalogs[index]
}

// StatusText renders the status line for a game.
func (c *Catalog) StatusText(status game.Status, seats player.Seats, current game.PlayerMark) string {
	switch status.State {
	case game.Won:
		if seats.IsBot(status.Winner) {
			return c.BotWon
		}
		return fmt.Sprintf(c.Won, status.Winner)
	case game.Draw:
		return c.Draw
	default:
		return fmt.Sprintf(c.Turn, current)
	}
}
