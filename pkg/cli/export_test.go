package cli

// RunWithWriter runs the app with command output sent to w
var RunWithWriter = run
