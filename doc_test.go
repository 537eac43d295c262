package trie

import "fmt"

func Example() {
	t := New()
	for _, word := range []string{"cat", "car", "care", "bombshell"} {
		t.Insert(word)
	}

	fmt.Println(t.Words())
	fmt.Println(t.Find("ca").Words())
	fmt.Println(t.Find("ca").IsWord(), t.Find("car").IsWord())

	// Output:
	// [bombshell car care cat]
	// [r re t]
	// false true
}

func Example_complete() {
	t := New()
	t.Insert("Monday")
	t.Insert("Tuesday")
	t.Insert("Thursday")

	fmt.Println(t.Complete("T"))
	fmt.Println(t.Complete("t"))

	// Output:
	// [Thursday Tuesday]
	// []
}

func Example_folding() {
	t := New().CaseInsensitive().WithNormalisation()
	t.Insert("Jürgen")

	fmt.Println(t.Find("JURG").IsWord(), t.Find("jurgen").IsWord())
	fmt.Println(t.Complete("Jür"))

	// Output:
	// false true
	// [jurgen]
}

func Example_defaults() {
	t := New()
	t.Insert("Café")

	fmt.Println(t.Find("Café").IsWord(), t.Find("café").IsWord(), t.Find("Cafe").IsWord())

	// Output:
	// true false false
}
