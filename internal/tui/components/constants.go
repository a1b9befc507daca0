package components

const (
	listChromeWidth  = 4 // border + padding on both sides
	minListWidth     = 30
	maxListWidth     = 72
	confirmBoxChrome = 4 // border + padding on both sides

	// EmptyListMessage is shown when every chore has been resolved
	EmptyListMessage = "Nothing due. Go put your feet up."

	// HintFooter is the quick-key line under the list
	HintFooter = "(c) complete  (o) obviate  (del) abrogate"

	// HintNavigation is the navigation line under the list
	HintNavigation = "(enter) choose  (j/k) move  (?) help  (q) quit"
)
