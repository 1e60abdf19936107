package shape

import (
	"errors"

	"github.com/ezrec/fisa/translate"
)

var f = translate.From

var (
	ErrShapeEmpty = errors.New(f("empty operand"))
)

type ErrShapeToken string

func (err ErrShapeToken) Error() string {
	return f("'%v' is not an operand shape", string(err))
}

type ErrShapeNesting string

func (err ErrShapeNesting) Error() string {
	return f("'%v' nests too deeply", string(err))
}
