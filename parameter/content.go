package parameter

// NodeLabels are the captions of the revealed nodes, index order
var NodeLabels = [NodeCount]string{
	"Bio",
	"Project 1: [Full Agent]",
	"Project 2: [TOF-Personal]",
	"Project 3: [TOF-Learning]",
}

// NodeColors are hex colors per node, index order
var NodeColors = [NodeCount]string{
	"#00ff88",
	"#00ccff",
	"#ff6ec7",
	"#ffd166",
}

// NodeDescriptions complete the node tooltip after the label
var NodeDescriptions = [NodeCount]string{
	"Background, experience and contact",
	"Autonomous agent with RAG, memory and tools",
	"Personal assistant built on the TOF stack",
	"Adaptive learning companion built on the TOF stack",
}

// Tooltip text
const (
	CoreTooltip           = "Neural Core: Central processing unit managing all AI operations"
	ConnectionTooltipFmt  = "Neural pathway: %.2f strength connection"
	FallbackNodeLabelFmt  = "Processing Node %d"
	FallbackNodeColor     = "#00ff88"
	BackgroundColor       = "#0a0e14"
	CoreInnerColor        = "#00ff88"
	CoreOuterColor        = "#00ccff"
	ConnectionColor       = "#00ff88"
	ParticleColor         = "#00ff88"
	TooltipForegroundHex  = "#e6e6e6"
	TooltipBackgroundHex  = "#1b2430"
	ShowcasePanelTitle    = " agent@portfolio "
	StatusHintHidden      = " ⏎ reveal · p pulse · m morph · q quit "
	StatusHintRevealed    = " ⏎ demo · 1-4 open node · ⇥ next demo · p pulse · m morph · q quit "
	TaglineHidden         = "Click to discover what I build"
	TaglineRevealed       = "Explore Projects →"
)
