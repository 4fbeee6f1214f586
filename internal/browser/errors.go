package browser

import (
	"fmt"
	"time"
)

// ElementNotVisibleError reports an element that never became visible within
// the wait timeout.
type ElementNotVisibleError struct {
	Locator Locator
	Timeout time.Duration
	Elapsed time.Duration
	Err     error
}

func (e *ElementNotVisibleError) Error() string {
	return fmt.Sprintf("element %s not visible after %v (timeout %v)", e.Locator, e.Elapsed.Round(time.Millisecond), e.Timeout)
}

func (e *ElementNotVisibleError) Unwrap() error { return e.Err }

// ElementNotInteractableError reports an element that never became
// clickable (visible and enabled) within the wait timeout.
type ElementNotInteractableError struct {
	Locator Locator
	Timeout time.Duration
	Elapsed time.Duration
	Err     error
}

func (e *ElementNotInteractableError) Error() string {
	return fmt.Sprintf("element %s not interactable after %v (timeout %v)", e.Locator, e.Elapsed.Round(time.Millisecond), e.Timeout)
}

func (e *ElementNotInteractableError) Unwrap() error { return e.Err }
