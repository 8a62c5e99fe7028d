package command

import "fmt"

func helpText(symbol string) string {
	return fmt.Sprintf(`
Pointsbot

Letters in [square brackets] are optional - e.g. !gran and !grant are the same.

!gran[t] @User 100 [note] - Give @User %[1]s100 from the bank (with optional note).

!give @User 100 [note] - Give @User %[1]s100 of your money (with optional note).
!send @User 100 [note] - Alias of !give.

!take @User 100 [note] - Take %[1]s100 of @User's money and give it to the bank (with optional note).

!help - Display this text.

!undo - Undo the last transaction by you.

!lead[erboard] - Show the current leaderboard.

!wall[et] - Show your current money amount.
!wall[et] @User - Show the current balance for @User.

!hist[ory] - Show the last 10 transactions.
!hist[ory] 20 - Show the last 20 transactions (20 at most).
!hist[ory] 10 20 - Show 10 transactions starting 20 transactions ago.
`, symbol)
}
