package graphref

// Version is the current version of the graphref module.
const Version = "0.1.0"
