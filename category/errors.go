// File: errors.go
// Role: sentinel errors for the category package, following the
// teacher's builder/errors.go policy: package-level sentinels only,
// never wrapped with formatted strings at the definition site.
package category

import "errors"

// ErrNotMonic is returned by PullbackComplement when the second arrow
// of the composable span is not injective.
var ErrNotMonic = errors.New("category: second homomorphism is not monic")
