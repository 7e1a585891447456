package vocab

// adjectives is the built-in adjective list.
var adjectives = []string{
	"absurd", "acidic", "adorable", "adventurous", "aggressive", "agreeable",
	"alert", "alive", "amused", "amusing", "angry", "annoyed",
	"annoying", "anxious", "arrogant", "ashamed", "attractive", "average",
	"awful", "bad", "bald", "ballsy", "beautiful", "better",
	"bewildered", "bitter", "black", "bloody", "blue", "blushing",
	"bored", "brainy", "breakable", "bright", "busy", "careful",
	"cautious", "charming", "cheerful", "chubby", "clammy", "clear",
	"clever", "cloudy", "clumsy", "colorful", "combative", "comfortable",
	"comical", "concerned", "condemned", "confused", "cool", "cooperative",
	"courageous", "crazy", "creamy", "creepy", "crowded", "cruel",
	"curious", "cute", "dangerous", "dark", "dead", "defeated",
	"defiant", "delicious", "delightful", "depressed", "determined", "different",
	"difficult", "disgusted", "distinct", "disturbed", "dizzy", "dorky",
	"doubtful", "droll", "dull", "easy", "eccentric", "elated",
	"elastic", "elegant", "embarrassed", "enchanting", "encouraging", "energetic",
	"enthusiastic", "envious", "evil", "excited", "expensive", "exuberant",
	"fair", "faithful", "famous", "fancy", "fantastic", "feisty",
	"fierce", "filthy", "fine", "fit", "flabby", "foolish",
	"fragile", "frail", "frantic", "fresh", "friendly", "frightened",
	"fruity", "funny", "gifted", "glamorous", "gleaming", "glorious",
	"good", "gorgeous", "graceful", "greasy", "grieving", "grotesque",
	"grumpy", "handsome", "healthy", "helpful", "helpless", "hilarious",
	"homeless", "homely", "horrible", "hot", "hungry", "hurt",
	"ill", "important", "impossible", "inexpensive", "innocent", "inquisitive",
	"itchy", "jealous", "jittery", "joyous", "juicy", "lazy",
	"light", "lonely", "lovely", "lucky", "ludicrous", "magnificent",
	"misty", "modern", "moist", "moldy", "motionless", "muddy",
	"mushy", "mysterious", "nasty", "naughty", "nervous", "obedient",
	"obnoxious", "odd", "open", "outrageous", "outstanding", "panicky",
	"perfect", "pleasant", "plump", "poised", "polite", "poor",
	"powerful", "precious", "preposterous", "prickly", "puzzled", "rancid",
	"real", "relieved", "repulsive", "rich", "ridiculous", "ripe",
	"rotten", "salty", "savory", "scary", "schlubby", "selfish",
	"shiny", "short", "shy", "silly", "skinny", "sleepy",
	"smiling", "smoggy", "sore", "sour", "sparkling", "spicy",
	"splendid", "spotless", "spunky", "stale", "stocky", "stormy",
	"strange", "stupid", "successful", "super", "sweet", "talented",
	"tame", "tangy", "tart", "tender", "tense", "terrible",
	"thankful", "thoughtful", "thoughtless", "tired", "tough", "troubled",
	"ugliest", "uninterested", "unreasonable", "unsightly", "unusual", "upset",
	"uptight", "vast", "victorious", "vivacious", "wacky", "wandering",
	"weary", "whimsical", "wicked", "wild", "worried", "worrisome",
	"wrong", "yummy", "zany", "zealous",
}
