package dictionary

// defaultCorpus is the built-in five-letter word list, used when no external
// word file is configured.
var defaultCorpus = []string{
	"about", "above", "abuse", "actor", "acute", "admit", "adopt", "adult", "after", "again",
	"agent", "agree", "ahead", "alarm", "album", "alert", "alike", "alive", "allow", "alone",
	"along", "alter", "among", "angel", "anger", "angle", "angry", "apart", "apple", "apply",
	"arena", "argue", "arise", "armor", "arose", "array", "arrow", "aside", "asset", "audio",
	"audit", "avoid", "award", "aware", "awful", "bacon", "badge", "badly", "baker", "bases",
	"basic", "basin", "basis", "batch", "beach", "beard", "beast", "began", "begin", "begun",
	"being", "belly", "below", "bench", "berry", "birth", "black", "blade", "blame", "blank",
	"blast", "blaze", "bleed", "blend", "bless", "blind", "blink", "block", "blood", "bloom",
	"blown", "blues", "blunt", "board", "boast", "bonus", "boost", "booth", "bound", "brain",
	"brake", "brand", "brass", "brave", "bread", "break", "breed", "brick", "bride", "brief",
	"bring", "broad", "broke", "brook", "broom", "brown", "brush", "buddy", "build", "built",
	"bunch", "burst", "buyer", "cabin", "cable", "cache", "camel", "candy", "cargo", "carol",
	"carry", "carve", "catch", "cater", "cause", "cease", "chain", "chair", "chalk", "champ",
	"chant", "chaos", "charm", "chart", "chase", "cheap", "cheat", "check", "cheek", "cheer",
	"chess", "chest", "chick", "chief", "child", "chill", "china", "chord", "chose", "chunk",
	"civic", "civil", "claim", "clamp", "clash", "clasp", "class", "clean", "clear", "clerk",
	"click", "cliff", "climb", "cling", "clock", "clone", "close", "cloth", "cloud", "clown",
	"coach", "coast", "could", "count", "court", "cover", "crack", "craft", "crane", "crash",
	"crazy", "cream", "crime", "crisp", "cross", "crowd", "crown", "crude", "cruel", "crush",
	"curve", "cycle", "daily", "dairy", "dance", "dated", "dealt", "death", "debut", "delay",
	"depth", "dirty", "doubt", "dozen", "draft", "drain", "drama", "drank", "dream", "dress",
	"dried", "drift", "drill", "drink", "drive", "drove", "dying", "eager", "early", "earth",
	"eight", "elect", "elite", "empty", "enemy", "enjoy", "enter", "entry", "equal", "error",
	"event", "every", "exact", "exist", "extra", "faith", "false", "fancy", "fatal", "fault",
	"favor", "fence", "fever", "fiber", "field", "fifth", "fifty", "fight", "final", "first",
	"fixed", "flame", "flash", "fleet", "flesh", "float", "flood", "floor", "flour", "fluid",
	"focus", "force", "forge", "forth", "forty", "forum", "found", "frame", "frank", "fraud",
	"fresh", "front", "frost", "fruit", "fully", "funny", "giant", "given", "glass", "globe",
	"glory", "grace", "grade", "grain", "grand", "grant", "grape", "grass", "grave", "great",
	"green", "greet", "grief", "grill", "gross", "group", "grown", "guard", "guess", "guest",
	"guide", "guilt", "habit", "happy", "harsh", "heart", "heavy", "hello", "hence", "hobby",
	"holly", "honey", "honor", "horse", "hotel", "house", "human", "humor", "hurry", "ideal",
	"image", "imply", "index", "inner", "input", "irony", "issue", "ivory", "jeans", "joint",
	"judge", "juice", "knife", "knock", "known", "label", "labor", "large", "laser", "later",
	"laugh", "layer", "learn", "lease", "least", "leave", "legal", "lemon", "level", "light",
	"limit", "linen", "liver", "local", "logic", "loose", "lover", "lower", "loyal", "lucky",
	"lunch", "lying", "magic", "major", "maker", "maple", "march", "match", "mayor", "meant",
	"medal", "media", "mercy", "merge", "merit", "metal", "meter", "midst", "might", "minor",
	"minus", "mixed", "model", "money", "month", "moral", "motor", "mount", "mouse", "mouth",
	"movie", "music", "naive", "naked", "nerve", "never", "newly", "night", "noble", "noise",
	"north", "noted", "novel", "nurse", "occur", "ocean", "offer", "often", "olive", "onion",
	"opera", "orbit", "order", "organ", "other", "ought", "outer", "owner", "paint", "panel",
	"panic", "paper", "party", "pasta", "patch", "pause", "peace", "pearl", "penny", "phase",
	"phone", "photo", "piano", "piece", "pilot", "pitch", "pizza", "place", "plain", "plane",
	"plant", "plate", "plaza", "point", "porch", "pound", "power", "press", "price", "pride",
	"prime", "print", "prior", "prize", "proof", "proud", "prove", "pulse", "punch", "pupil",
	"queen", "query", "quest", "quick", "quiet", "quite", "quota", "quote", "radar", "radio",
	"raise", "rally", "ranch", "range", "rapid", "ratio", "reach", "react", "ready", "realm",
	"rebel", "refer", "relax", "reply", "rider", "ridge", "rifle", "right", "rigid", "risky",
	"rival", "river", "robot", "rocky", "rough", "round", "route", "royal", "rural", "salad",
	"sauce", "scale", "scene", "scope", "score", "sense", "serve", "seven", "shade", "shake",
	"shall", "shame", "shape", "share", "sharp", "sheep", "sheet", "shelf", "shell", "shift",
	"shine", "shirt", "shock", "shoot", "shore", "short", "shown", "sight", "silly", "since",
	"sixth", "sixty", "sized", "skill", "slash", "sleep", "slice", "slide", "slope", "small",
	"smart", "smile", "smoke", "snake", "solar", "solid", "solve", "sorry", "sound", "south",
	"space", "spare", "spark", "speak", "speed", "spend", "spent", "spice", "spike", "spine",
	"split", "spoke", "sport", "spray", "squad", "stack", "staff", "stage", "stain", "stake",
	"stand", "stare", "start", "state", "steam", "steel", "steep", "steer", "stick", "stiff",
	"still", "stock", "stone", "stood", "store", "storm", "story", "stove", "strip", "stuck",
	"study", "stuff", "style", "sugar", "suite", "sunny", "super", "surge", "sweet", "swift",
	"swing", "sword", "table", "taken", "taste", "teach", "teeth", "tempo", "tense", "thank",
	"theme", "there", "these", "thick", "thief", "thing", "think", "third", "those", "three",
	"threw", "throw", "thumb", "tiger", "tight", "timer", "tired", "title", "toast", "today",
	"token", "topic", "torch", "total", "touch", "tough", "tower", "trace", "track", "trade",
	"trail", "train", "trait", "trash", "treat", "trend", "trial", "tribe", "trick", "tried",
	"truck", "truly", "trunk", "trust", "truth", "tutor", "twice", "twist", "ultra", "uncle",
	"under", "union", "unite", "unity", "until", "upper", "upset", "urban", "usage", "usual",
	"vague", "valid", "value", "vapor", "verse", "video", "virus", "visit", "vital", "vivid",
	"vocal", "voice", "voter", "wagon", "waste", "watch", "water", "weigh", "weird", "whale",
	"wheat", "wheel", "where", "which", "while", "white", "whole", "whose", "wider", "woman",
	"world", "worry", "worse", "worst", "worth", "would", "wound", "wrist", "write", "wrong",
	"wrote", "yield", "young", "youth",
}
