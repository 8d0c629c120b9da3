package render

import "io"

type Renderer[T any] interface {
	Render(result T) error
}

// JSONRenderer writes results as indented JSON
type JSONRenderer[T any] struct {
	out io.Writer
}

// NewJSONRenderer creates a new JSON renderer
func NewJSONRenderer[T any](out io.Writer) *JSONRenderer[T] {
	return &JSONRenderer[T]{out: out}
}

func (r *JSONRenderer[T]) Render(result T) error {
	return RenderJSON(r.out, result)
}
