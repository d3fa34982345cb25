package impose_test

import (
	"fmt"

	"github.com/matzehuels/imposer/pkg/core/impose"
)

func ExampleBuild() {
	plan, err := impose.Build(impose.Request{PageCount: 6, Scheme: impose.SchemeBooklet})
	if err != nil {
		panic(err)
	}
	fmt.Println("sheets:", len(plan.Sheets), "blanks:", plan.BlanksAdded)
	for i, s := range plan.Sheets {
		fmt.Println(i, s.Pages[0].Index(), s.Pages[1].Index())
	}
	// Output:
	// sheets: 4 blanks: 2
	// 0 -1 0
	// 1 1 -1
	// 2 5 2
	// 3 3 4
}

func ExampleBuild_signature() {
	plan, err := impose.Build(impose.Request{
		PageCount: 34,
		Scheme:    impose.SchemeSignature,
		Options:   impose.Options{SignatureSize: 16},
	})
	if err != nil {
		panic(err)
	}
	for _, sig := range plan.Signatures {
		fmt.Printf("signature %d: pages %d-%d\n", sig.Index, sig.Base+1, sig.Base+sig.Size)
	}
	fmt.Println("adjusted:", plan.AdjustedPageCount)
	// Output:
	// signature 0: pages 1-16
	// signature 1: pages 17-32
	// signature 2: pages 33-36
	// adjusted: 36
}

func ExampleLookup() {
	s, _ := impose.Lookup(impose.SchemePerfectTumble)
	fmt.Println(s.Family, s.Rows, s.Cols, s.Unit)
	// Output: perfect-bound 2 4 16
}
