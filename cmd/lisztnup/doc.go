// Command lisztnup curates a classical-music catalog: it reads the raw
// composer/work/recording forest, scores and filters it, and writes the
// flat catalog the player consumes.
package main
