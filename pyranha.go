/*
Package pyranha exposes the type generators of the piranha computer-algebra catalog to Go code.
The catalog itself lives in package core; package types republishes a fixed set of named generators
(numeric types, monomial encodings, polynomial and Poisson-series generators) as an immutable registry.
*/
package pyranha
