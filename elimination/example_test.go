package elimination_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/divelim/elimination"
	"github.com/katalvlaran/divelim/standings"
)

const division = `4
Atlanta       83 71  8  0 1 6 1
Philadelphia  80 79  3  1 0 0 2
New_York      78 78  6  6 0 0 0
Montreal      77 82  3  1 2 0 0
`

// ExampleEngine_EvaluateAll reports every competitor of a division.
func ExampleEngine_EvaluateAll() {
	model, err := standings.Read(strings.NewReader(division))
	if err != nil {
		fmt.Println("read:", err)
		return
	}
	engine, err := elimination.New()
	if err != nil {
		fmt.Println("engine:", err)
		return
	}

	verdicts, err := engine.EvaluateAll(context.Background(), model)
	if err != nil {
		fmt.Println("evaluate:", err)
		return
	}
	for _, v := range verdicts {
		fmt.Println(v)
	}
	// Output:
	// Atlanta: not eliminated
	// Philadelphia: eliminated by [0 2] (flow 6 < 7)
	// New_York: not eliminated
	// Montreal: eliminated (trivially) by [0]
}

// ExampleEngine_Explain shows the certificate behind a non-trivial
// elimination.
func ExampleEngine_Explain() {
	model, _ := standings.Read(strings.NewReader(division))
	engine, _ := elimination.New(elimination.WithStrategy(elimination.StrategyLP))

	v, err := engine.Explain(context.Background(), model, 1)
	if err != nil {
		fmt.Println("explain:", err)
		return
	}
	c := v.Certificate
	fmt.Printf("wins %d + mutual games %d > %d x %d: %v\n",
		c.TotalWins, c.MutualGames, v.MaxWins, len(c.Members), c.Proves(v.MaxWins))
	// Output:
	// wins 161 + mutual games 6 > 83 x 2: true
}

// ExampleIsTriviallyEliminated uses the O(N) bound on its own.
func ExampleIsTriviallyEliminated() {
	model, _ := standings.Read(strings.NewReader(division))
	for _, id := range model.IDs() {
		out, _ := elimination.IsTriviallyEliminated(model, id)
		c, _ := model.Get(id)
		fmt.Println(c.Name, out)
	}
	// Output:
	// Atlanta false
	// Philadelphia false
	// New_York false
	// Montreal true
}
