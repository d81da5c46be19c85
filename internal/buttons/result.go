package buttons

import "fmt"

// Token is the raw outcome a dialog window reports when it closes. Open and
// Save share TokenAbort; Set.Open tells them apart.
type Token int

const (
	TokenNone Token = iota
	TokenOK
	TokenCancel
	TokenAbort
	TokenRetry
	TokenIgnore
	TokenYes
	TokenNo
)

var tokenNames = [...]string{"None", "OK", "Cancel", "Abort", "Retry", "Ignore", "Yes", "No"}

func (t Token) String() string {
	if t < 0 || int(t) >= len(tokenNames) {
		return fmt.Sprintf("Token(%d)", int(t))
	}
	return tokenNames[t]
}

// Result is the caller-facing outcome of a message dialog.
type Result int

const (
	ResultOK Result = iota
	ResultCancel
	ResultRetry
	ResultIgnore
	ResultYes
	ResultNo
	ResultOpen
	ResultSave
	ResultClose
	ResultNone
)

var resultNames = [...]string{"OK", "Cancel", "Retry", "Ignore", "Yes", "No", "Open", "Save", "Close", "None"}

func (r Result) String() string {
	if r < 0 || int(r) >= len(resultNames) {
		return fmt.Sprintf("Result(%d)", int(r))
	}
	return resultNames[r]
}

// Negative reports whether the result declines the dialog's question.
func (r Result) Negative() bool {
	return r == ResultCancel || r == ResultNo
}
