// Command prooflab is the CLI for managing photo galleries and applying
// engine-suggested collections.
package main
