package errors

// Error codes for the rewrite engine.
// These codes are used in error messages and tests to provide consistent
// error identification.
//
// Error code ranges:
// E0001-E0099: Pattern construction errors
// E0100-E0199: Fixed-point driver errors
// E0200-E0299: Operator registry errors

const (
	// E0001: a pattern template contains a free-variable leaf
	ErrorLeafInTemplate = "E0001"

	// E0002: the to-template references a hole absent from the from-template
	ErrorUnknownPlaceholder = "E0002"

	// E0003: the from-template is a single unconstrained hole
	ErrorTrivialMatch = "E0003"

	// E0004: a matcher key is not a hole name in the from-template
	ErrorUnknownMatcherKey = "E0004"

	// E0100: the fixed-point driver hit its iteration cap
	ErrorNonTermination = "E0100"

	// E0101: a rewrite changed the expression's inferred static type
	ErrorTypeChanged = "E0101"

	// E0200: operator name not found in the registry
	ErrorUnknownOperator = "E0200"

	// E0201: operator name registered twice
	ErrorDuplicateOperator = "E0201"
)

// GetErrorDescription returns a human-readable description of the error code.
func GetErrorDescription(code string) string {
	switch code {
	case ErrorLeafInTemplate:
		return "Pattern templates must not contain free-variable leaves"
	case ErrorUnknownPlaceholder:
		return "Substitution template references a hole the pattern never binds"
	case ErrorTrivialMatch:
		return "Pattern would match every node"
	case ErrorUnknownMatcherKey:
		return "Matcher predicate registered for a hole the pattern does not have"
	case ErrorNonTermination:
		return "Rewriting did not reach a fixed point within the iteration cap"
	case ErrorTypeChanged:
		return "A rewrite changed the expression's inferred static type"
	case ErrorUnknownOperator:
		return "Operator name is not registered"
	case ErrorDuplicateOperator:
		return "Operator name is already registered"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code.
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0001" && code < "E0100":
		return "Pattern Construction"
	case code >= "E0100" && code < "E0200":
		return "Fixed-Point Driver"
	case code >= "E0200" && code < "E0300":
		return "Operator Registry"
	default:
		return "Unknown"
	}
}
