// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles server configuration from CLI flags and
environment variables.

# Supported Settings

  - Port (-p, PORT): server port, default 4830
  - PollsFile (-c, POLLS_FILE): path to polls.yaml, default data/polls.yaml
  - FetchTimeout (-fetch-timeout, FETCH_TIMEOUT): HTTP timeout for poll
    export fetches, default 30s

CLI flags take precedence over environment variables. The poll definitions
themselves live in the polls file; see the config package.
*/
package cliparse
