// Package similar implements the Gestalt string-similarity coefficient, a
// recursive longest-common-substring match ratio in [0,1], plus the
// naming-convention classification used to flag inconsistent option
// names. It backs both "did you mean" suggestions and the validator's
// similar-name warnings.
package similar
