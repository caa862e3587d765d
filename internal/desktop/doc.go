/*
Package desktop implements the simulated Ubuntu desktop shown on the
"Try Ubuntu" page.

It covers:
  - the fixed table of dock applications
  - the open-application set of one mounted desktop (Manager)
  - fixed window frames and the mock panel content of each window
  - the top-bar clock
  - page-mount sessions, expired when idle

Nothing here runs real processes; every window is canned content.

Example usage:

	sessions := desktop.NewSessions(desktop.SessionsConfig{DefaultApps: []string{"files"}})
	s, err := sessions.Mount()
	if err != nil {
		// handle error
	}
	_ = s.Open("terminal")
*/
package desktop
