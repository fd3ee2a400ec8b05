// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeStructuralMismatch,
//	    "field count matches no accepted layout",
//	    cause,
//	    map[string]interface{}{
//	        "handler": "addSawing",
//	        "recipeType": "<recipetype:mekanism:sawing>",
//	    },
//	)
package errors
