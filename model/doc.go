// Package model contains the in-memory representation of orders flowing
// through the dispatch engine. The entities here carry no scheduling
// policy; ownership and mutation rules are enforced by the packages that
// hold them.
package model
