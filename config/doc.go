// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package config loads the polls file (YAML via viper).

Example polls.yaml:

	domain: nuudel.digitalcourage.de
	polls:
	  - poll_id: JLKKK3hXJ8w3GExz
	    title: Infostand
	    kind: booth
	    minimum_staff_per_slot: 2
	    total_workforce: 20
	  - poll_url: https://nuudel.digitalcourage.de/xhLaKnOUkjw7CsXW
	    title: Plakatieren
	    kind: task
	    person_hours_per_day: 8
	    person_hours_total: 40

Each entry needs a title, a kind (booth or task), and exactly one of poll_id
and poll_url. Staffing targets are optional; a missing target leaves the
corresponding statuses unset.

Server-process settings (port, file paths, timeouts) live in the cliparse
package instead.
*/
package config
