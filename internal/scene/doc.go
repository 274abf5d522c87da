// Package scene holds the in-memory model of a 2D signed-distance-field scene
// and its JSON document format.
//
// A Description is produced once by Parse or Decode, handed to the code
// generator and discarded. Shapes keep document order: it is the compositing
// order and the index used for generated variable names.
package scene
