package pictures

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ib-77/fam/pkg/fam"
	"github.com/ib-77/fam/pkg/fam/combinator"
	"github.com/ib-77/fam/pkg/fam/seq"
	"github.com/ib-77/fam/pkg/fam/solo"
)

const (
	SectionFunctor     = "functor"
	SectionApplicative = "applicative"
	SectionMonad       = "monad"
)

// Namespace scopes scenario IDs; it is derived from the article URL.
var Namespace = uuid.NewSHA1(uuid.NameSpaceURL,
	[]byte("http://www.mokacoding.com/blog/functor-applicative-monads-in-pictures/"))

type Scenario struct {
	ID      uuid.UUID
	Section string
	Title   string
	Run     func() string
}

func newScenario(section, title string, run func() string) Scenario {
	return Scenario{
		ID:      ScenarioID(section, title),
		Section: section,
		Title:   title,
		Run:     run,
	}
}

// ScenarioID is stable across runs for the same section and title.
func ScenarioID(section, title string) uuid.UUID {
	return uuid.NewSHA1(Namespace, []byte(section+"/"+title))
}

func plusThree(addend int) int {
	return addend + 3
}

func addition(a, b int) int {
	return a + b
}

func multiplication(a, b int) int {
	return a * b
}

func half(a int) fam.Optional[int] {
	if a%2 == 0 {
		return fam.Present(a / 2)
	}
	return fam.Absent[int]()
}

func show(v any) string {
	return fmt.Sprint(v)
}

// Catalog returns the walkthrough in reading order.
func Catalog() []Scenario {
	return []Scenario{
		newScenario(SectionFunctor, "map plusThree over Present(2)", func() string {
			return show(solo.Map(fam.Present(2), plusThree))
		}),
		newScenario(SectionFunctor, "map over Absent", func() string {
			return show(solo.Map(fam.Absent[int](), plusThree))
		}),
		newScenario(SectionFunctor, "plusThree <^> Present(2)", func() string {
			return show(combinator.MapInto(plusThree, fam.Present(2)))
		}),
		newScenario(SectionFunctor, "functions are functors: (+2) . (+3) applied to 10", func() string {
			foo := combinator.Compose(func(x int) int { return x + 2 }, func(x int) int { return x + 3 })
			return show(foo(10))
		}),
		newScenario(SectionApplicative, "Present(+3) <*> Present(2)", func() string {
			return show(combinator.ApplyInto(fam.Present(plusThree), fam.Present(2)))
		}),
		newScenario(SectionApplicative, "[+3, *2] <*> [1, 2, 3]", func() string {
			fs := []func(int) int{plusThree, func(x int) int { return x * 2 }}
			return show(seq.Apply(fs, []int{1, 2, 3}))
		}),
		newScenario(SectionApplicative, "curry(addition)(2)(3)", func() string {
			return show(combinator.Curry(addition)(2)(3))
		}),
		newScenario(SectionApplicative, "curry(addition) <^> Present(2) <*> Present(3)", func() string {
			return show(combinator.ApplyInto(combinator.MapInto(combinator.Curry(addition), fam.Present(2)), fam.Present(3)))
		}),
		newScenario(SectionApplicative, "curry(multiplication) <^> Present(5) <*> Present(3)", func() string {
			return show(combinator.ApplyInto(combinator.MapInto(combinator.Curry(multiplication), fam.Present(5)), fam.Present(3)))
		}),
		newScenario(SectionMonad, "Present(3) >>- half", func() string {
			return show(combinator.BindInto(fam.Present(3), half))
		}),
		newScenario(SectionMonad, "Present(4) >>- half", func() string {
			return show(combinator.BindInto(fam.Present(4), half))
		}),
		newScenario(SectionMonad, "Absent >>- half", func() string {
			return show(combinator.BindInto(fam.Absent[int](), half))
		}),
		newScenario(SectionMonad, "Present(20) >>- half >>- half >>- half", func() string {
			return show(combinator.BindInto(combinator.BindInto(combinator.BindInto(fam.Present(20), half), half), half))
		}),
	}
}

func ByID(id uuid.UUID) fam.Optional[Scenario] {
	for _, s := range Catalog() {
		if s.ID == id {
			return fam.Present(s)
		}
	}
	return fam.Absent[Scenario]()
}

func BySection(section string) []Scenario {
	var res []Scenario
	for _, s := range Catalog() {
		if s.Section == section {
			res = append(res, s)
		}
	}
	return res
}
