// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds signals and byte-exact container fixtures for
// tests. Fixtures are assembled by hand so that layouts the production
// encoders never emit (8-bit, float, extensible, AIFF) can be tested.
package audiotest
