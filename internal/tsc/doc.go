// Package tsc reads the CPU time-stamp counter and its CPUID-described
// capabilities on amd64. Other platforms report no counter, which downgrades
// serlog timestamps to the undetermined form.
package tsc
