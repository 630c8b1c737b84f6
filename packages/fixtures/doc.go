// Package fixtures provides a per-scope registry of test lifecycle
// callbacks and the runner that orchestrates them around test bodies.
//
// Scopes are slash-separated paths and nest: running a test in
// "storage/cache" applies the callbacks of "storage" and then
// "storage/cache". Setup runs outer scope first, teardown inner scope
// first, and teardown always runs — a failing or panicking body never
// skips it. BeforeAll callbacks run once per scope, triggered by the
// first test that enters it; AfterAll callbacks run from TestMain after
// the last test.
//
//	var users = fixtures.Module("users")
//
//	func init() {
//		users.Setup(openStore)
//		users.TearDown(closeStore)
//	}
//
//	func TestCreate(t *testing.T) {
//		users.Run(t, func() { ... })
//	}
//
//	func TestMain(m *testing.M) { fixtures.TestMain(m) }
package fixtures
