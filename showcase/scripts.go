package showcase

// Capabilities in Tab order; the first is the fallback for unknown names
var Capabilities = []string{"rag", "memory", "tools", "deploy"}

// BootMessage is typed before the first capability when the demo starts
const BootMessage = "Initializing AI Agent Blueprint..."

var scripts = map[string][]string{
	"rag": {
		"> agent.rag.initialize()",
		"Loading vector database...",
		"Indexing documents: 1,247 files",
		"Embeddings generated: 15,832 chunks",
		"RAG pipeline ready.",
		"",
		`> agent.rag.query("How to implement custom tools?")`,
		"Searching knowledge base...",
		"Found 12 relevant documents",
		"Generating response with context...",
		"Response: Custom tools can be implemented by extending the BaseTool class...",
	},
	"memory": {
		"> agent.memory.initialize()",
		"Setting up memory systems...",
		"Short-term memory: Active",
		"Long-term memory: Connected to PostgreSQL",
		"Episodic buffer: Ready",
		"",
		`> agent.memory.store({context: "user_preference", data: {...}})`,
		"Storing in short-term memory...",
		"Creating embeddings...",
		"Persisting to long-term storage...",
		"Memory stored with ID: mem_7f3a9c2d",
	},
	"tools": {
		"> agent.tools.list()",
		"Available tools:",
		"  - WebSearch: Search the internet",
		"  - CodeExecutor: Run Python code",
		"  - DatabaseQuery: Query SQL databases",
		"  - FileSystem: Read/write files",
		"  - APIClient: Make HTTP requests",
		"",
		`> agent.tools.execute("WebSearch", {query: "latest AI papers"})`,
		"Executing WebSearch...",
		"Found 47 results",
		"Filtering by relevance...",
	},
	"deploy": {
		"> npm run deploy",
		"Building production bundle...",
		"Optimizing assets...",
		"Creating Docker container...",
		"",
		"> docker push ai-agent:latest",
		"Pushing to registry...",
		"Layer 1/5: ████████████ 100%",
		"Layer 2/5: ████████████ 100%",
		"Layer 3/5: ████████████ 100%",
		"Layer 4/5: ████████████ 100%",
		"Layer 5/5: ████████████ 100%",
		"",
		"Deployment successful!",
		"Agent available at: https://api.your-agent.ai/v1",
	},
}

// Script returns the lines of capability name, falling back to rag
func Script(name string) []string {
	if s, ok := scripts[name]; ok {
		return s
	}
	return scripts[Capabilities[0]]
}

// nodePages are typed when a node other than the demo node is selected
var nodePages = map[int][]string{
	0: {
		"> whoami",
		"AI engineer building autonomous agents",
		"Background, experience and contact: see README",
	},
	2: {
		"> open tof-personal",
		"Personal assistant built on the TOF stack",
	},
	3: {
		"> open tof-learning",
		"Adaptive learning companion built on the TOF stack",
	},
}

// DemoNode is the node whose selection starts the demo
const DemoNode = 1
