// Package sources provides a uniform polling surface over heterogeneous
// input backends: raw gamepad axes and buttons, keyboard keys, and pluggable
// profiles that remap raw codes to logical controls.
//
// The main type in the package is the Source interface. The TryPoll group of
// functions answer the question "did any input of this kind cross its
// activation threshold this tick, and which one". The remaining functions
// read the current state of a previously identified input and are used by
// the binding package when constructing the final axis and button delegates.
//
// The Gamepads type implements Source over the ebiten input layer. The
// Profile type implements Source over an ebitengine-input keymap. The
// Registry type collects zero or more sources and polls them in registration
// order.
package sources
