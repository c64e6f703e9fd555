package control

import "github.com/san-kum/gravtoy/internal/dynamo"

type None struct{}

func NewNone() *None {
	return &None{}
}

func (n *None) Compute(tick int) dynamo.Controls {
	return dynamo.Controls{}
}
