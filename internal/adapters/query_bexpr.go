package adapters

import (
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/hashicorp/go-bexpr"

	"cloudsweep/internal/types"
)

// BexprQueryCompiler compiles |filter-expression suffixes into boolean
// expression evaluators. Evaluation happens at the consumer, against each
// produced resource's raw data.
type BexprQueryCompiler struct{}

func NewBexprQueryCompiler() BexprQueryCompiler {
	return BexprQueryCompiler{}
}

type bexprQuery struct {
	expr string
	eval *bexpr.Evaluator
}

func (q bexprQuery) Evaluate(datum any) (bool, error) {
	return q.eval.Evaluate(datum)
}

func (q bexprQuery) String() string {
	return q.expr
}

func (BexprQueryCompiler) Compile(expression string) (types.Query, error) {
	eval, err := bexpr.CreateEvaluator(expression)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid filter expression").
			WithCause(err)
	}
	return bexprQuery{expr: expression, eval: eval}, nil
}
