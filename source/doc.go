/*
Package source enumerates the population of target addresses for a scan,
either from Cloudflare's officially published IPv4 ranges ([Cloudflare]) or
from a local delimited range list ([File]), and expands the CIDR ranges into
the individual addresses the probing engine will visit exactly once each.
*/
package source
