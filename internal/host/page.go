package host

import "fmt"

// StandardHoles is the number of holes on the page served to players.
const StandardHoles = 9

// NewPage builds the whack-a-mole page: a start control, score and timer
// displays, and a grid of holes each holding one mole.
//
//	body
//	├── #start
//	├── #score  "0"
//	├── #timer  "0"
//	└── .grid
//	    └── .hole#hole-N
//	        └── .mole#mole-N
func NewPage(holes int) *Document {
	doc := NewDocument()
	body := doc.Body()

	body.Append(NewElement(StartID, "button")).SetText("Start")
	body.Append(NewElement(ScoreID)).SetText("0")
	body.Append(NewElement(TimerID)).SetText("0")

	grid := body.Append(NewElement("", "grid"))
	for i := range holes {
		hole := grid.Append(NewElement(fmt.Sprintf("hole-%d", i+1), HoleClass))
		hole.Append(NewElement(fmt.Sprintf("mole-%d", i+1), MoleClass))
	}
	return doc
}
