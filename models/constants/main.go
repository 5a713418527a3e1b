package constants

/*
	Defines a set of base level
	constants and enums to be used
	throughout tcvariant.
*/
type AssemblyId string
type Strand int
