package main

// EntryPoint builds the command line for the external evaluation process.
// The process is an opaque collaborator: it reads the model-answer file,
// does the measurement and reports through its own exit code and output.
type EntryPoint struct {
	Python string
	Module string
}

func (e *EntryPoint) RunCmd(filePath string) []string {
	return []string{e.Python, "-m", e.Module, "--file-path", filePath}
}
