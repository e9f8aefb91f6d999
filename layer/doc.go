// Package layer defines summary depth policies and partitions a
// profile's character budget between them.
//
// A layer is a named fraction of the total budget: headline takes
// 10%, one_screen 80%, deep the full budget. Every layer's ceiling is
// floored at one character so no layer ever degenerates to an empty
// budget, even for pathologically small screens.
package layer
