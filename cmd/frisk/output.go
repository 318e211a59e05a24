package main

import (
	"encoding/json"
	"fmt"
)

// Output emits results as a JSON array, streaming pages as they arrive
// rather than buffering the whole chain.
type Output[T any] interface {
	Emit(T)
	EmitAll([]T)
	Done()
}

type output[T any] struct {
	isSingle    bool
	hasPrevious bool
}

func (o *output[T]) EmitAll(vs []T) {
	for _, v := range vs {
		o.Emit(v)
	}
}

func (o *output[T]) Emit(v T) {
	indent := ""
	if !o.isSingle {
		indent = "  "
		if !o.hasPrevious {
			fmt.Print("[\n")
		} else {
			fmt.Print(",\n")
		}
	}

	formatted, _ := json.MarshalIndent(v, indent, "  ")
	fmt.Print(indent + string(formatted))
	o.hasPrevious = true
}

func (o *output[T]) Done() {
	if !o.isSingle {
		if o.hasPrevious {
			fmt.Print("\n]\n")
		} else {
			fmt.Println("[]")
		}
	} else {
		fmt.Println()
	}
}

func OutputSingle[T any]() Output[T] {
	return &output[T]{
		isSingle: true,
	}
}

func OutputMultiple[T any]() Output[T] {
	return &output[T]{
		isSingle: false,
	}
}
