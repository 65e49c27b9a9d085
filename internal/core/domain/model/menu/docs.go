// Package menu provides the Menu aggregate: a named, priced bundle of product
// quantities that belongs to a menu group and is offered for order.
//
// A menu and its line items are created together. Line items keep the order in
// which they were requested and are never mutated afterwards; product and menu
// group existence is checked by the caller before NewMenu is invoked.
package menu
