// Package integration runs the scenario set against the stand-in platform
// backed by real MySQL and redis stores. The tests need Docker and are built
// with -tags integration.
package integration
