package oauth

// ResultKind discriminates the outcome of Authenticate.
type ResultKind int

const (
	// ResultRedirect sends the user agent to RedirectURL.
	ResultRedirect ResultKind = iota + 1
	// ResultSuccess carries the verified User.
	ResultSuccess
	// ResultFail means the credentials were rejected; Info explains why.
	ResultFail
	// ResultError carries Err, one of the package error types or a provider's.
	ResultError
)

func (k ResultKind) String() string {
	switch k {
	case ResultRedirect:
		return "redirect"
	case ResultSuccess:
		return "success"
	case ResultFail:
		return "fail"
	case ResultError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the single outcome of one Authenticate call.
type Result struct {
	User        any
	Info        any
	Err         error
	RedirectURL string
	Kind        ResultKind
}

func redirectResult(url string) Result {
	return Result{Kind: ResultRedirect, RedirectURL: url}
}

func successResult(user, info any) Result {
	return Result{Kind: ResultSuccess, User: user, Info: info}
}

func failResult(info any) Result {
	return Result{Kind: ResultFail, Info: info}
}

// ErrorResult wraps err as a ResultError outcome.
func ErrorResult(err error) Result {
	return Result{Kind: ResultError, Err: err}
}
