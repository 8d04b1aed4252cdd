//    AssignTopics
//    Copyright: 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

// CurrentConfiguration - the state of the program's configuration at any given moment
type CurrentConfiguration struct {
	BlackAndWhite bool
	Chart         bool
	DataFile      string
	EchoLog       int // 0: none; 1: terse; 2: verbose
	HostIP        string
	HostPort      int
	LogLevel      int
	ModelFile     string
	OutputName    string
	ProfileCPU    bool
	ProfileMEM    bool
	QuietStart    bool
	Serve         bool
}
