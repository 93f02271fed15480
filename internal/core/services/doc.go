// Package services contains the core business logic, implementing the
// driving ports in terms of the driven ports. Services are constructed
// once at startup and are safe for concurrent use.
package services
