package tui

import (
	"fmt"
	"math/rand/v2"
)

// greetings are the header templates; %s is the profile name
var greetings = []string{
	"Pitter patter, let's get at 'er, %s.",
	"%s, how're ya now?",
	"It's a great day for hay, %s.",
	"You'd best be preparin' for a donnybrook, %s.",
	"Let's take about 5 to 10%% off 'er over there, %s.",
	"Back to chorin', %s.",
}

// greeting picks a header for name. pick returns an index in [0, n).
func greeting(name string, pick func(n int) int) string {
	if pick == nil {
		pick = rand.IntN
	}
	return fmt.Sprintf(greetings[pick(len(greetings))], name)
}
