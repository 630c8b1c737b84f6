// Package expect provides fluent, chainable expectations over captured
// values.
//
//	expect.That(t, count).ToBeGreaterThan(3).And().ToBeEven()
//	expect.That(t, items).Not().ToBeEmpty()
//	expect.That(t, n).ToBeNegative().Or().ToBeZero()
//
// Each matcher call evaluates immediately and emits one assertion event
// carrying the cumulative chain result so far. Inside a test, a chain
// whose final result is false fails the test; Verify returns the result
// explicitly, and chains left unverified are settled through t.Cleanup.
// Outside a test (expect.Value), chains only report, which keeps them
// usable in demo code.
//
// The subject's source expression is recovered from the caller's file,
// so reports read "user.Age is positive"; use As to name subjects whose
// source is unavailable.
package expect
