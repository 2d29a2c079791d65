// Package config loads and validates the sales reporting configuration.
//
// Configuration comes from a YAML file (paths, logging, SMTP transport and
// the per-salesperson blocks with enabled flags, quarterly budgets and
// recipients) with environment variable overrides under the SALES prefix.
// Per-salesperson recipient lists may additionally be supplied via
// SALES_AE_EMAILS_<NAME> variables.
//
// Test mode redirects every outgoing email to a single test address; the
// redirect is applied at load time so downstream components never need to
// know about it.
package config
