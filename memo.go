package descent

import lru "github.com/hashicorp/golang-lru/v2"

// Memo is an evaluator that remembers the results of recently evaluated
// expressions. It is safe to use concurrently.
type Memo struct {
	ev    *Evaluator
	cache *lru.Cache[string, memoized]
}

type memoized struct {
	r   float64
	err error
}

// NewMemo creates a Memo remembering up to size results of ev.Eval. size must
// be positive.
func NewMemo(ev *Evaluator, size int) (*Memo, error) {
	cache, err := lru.New[string, memoized](size)
	if err != nil {
		return nil, err
	}
	return &Memo{ev: ev, cache: cache}, nil
}

// Eval returns the remembered result for src if there is one, and otherwise
// evaluates it and remembers the result, including any error.
func (m *Memo) Eval(src string) (float64, error) {
	if v, ok := m.cache.Get(src); ok {
		return v.r, v.err
	}
	r, err := m.ev.Eval(src)
	m.cache.Add(src, memoized{r: r, err: err})
	return r, err
}
