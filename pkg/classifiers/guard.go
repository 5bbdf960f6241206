package classifiers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/timeout"

	"github.com/nearbyfyi/ner/pkg/models"
)

// guardedClassifier bounds every Tag call with a timeout policy.
type guardedClassifier struct {
	name    string
	inner   models.Classifier
	timeout time.Duration
	policy  timeout.Timeout[string]
}

// Guard wraps c so that a Tag call running longer than d is cancelled and
// reported as models.ErrClassifierTimeout. A non-positive d returns c as is.
func Guard(name string, c models.Classifier, d time.Duration) models.Classifier {
	if d <= 0 {
		return c
	}
	return &guardedClassifier{
		name:    name,
		inner:   c,
		timeout: d,
		policy:  timeout.With[string](d),
	}
}

func (g *guardedClassifier) Tag(ctx context.Context, text string) (string, error) {
	tagged, err := failsafe.NewExecutor[string](g.policy).
		WithContext(ctx).
		GetWithExecution(func(exec failsafe.Execution[string]) (string, error) {
			return g.inner.Tag(exec.Context(), text)
		})
	if errors.Is(err, timeout.ErrExceeded) {
		log.Warnf("classifier %q exceeded its %s time budget", g.name, g.timeout)
		return "", fmt.Errorf("%w: %q after %s", models.ErrClassifierTimeout, g.name, g.timeout)
	}
	return tagged, err
}
