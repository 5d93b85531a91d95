// Package compilation owns the top-level Compilation object a driver
// creates around one parsed design: the shared symbol table, type
// interner, binder and constant evaluator, plus the instance-elaboration
// pass that walks a top module's hierarchy_instantiation items into a
// concrete tree of Instances (LRM 23, 4.10).
package compilation
