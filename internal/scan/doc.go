// Package scan enumerates the immediate regular-file children of a target
// directory. It never descends into subdirectories.
package scan
