package vocab

// animals is the built-in animal list, sorted alphabetically.
var animals = []string{
	"aardvark", "albatross", "alligator", "alpaca", "anaconda", "angelfish",
	"anteater", "antelope", "armadillo", "axolotl", "baboon", "badger",
	"barracuda", "bat", "beagle", "bear", "beaver", "beetle",
	"bison", "bobcat", "buffalo", "bulldog", "bumblebee", "butterfly",
	"buzzard", "camel", "capybara", "caribou", "cassowary", "cat",
	"caterpillar", "catfish", "chameleon", "cheetah", "chicken", "chimpanzee",
	"chinchilla", "chipmunk", "cicada", "clam", "cobra", "cockatoo",
	"cod", "condor", "cormorant", "cougar", "cow", "coyote",
	"crab", "crane", "cricket", "crocodile", "crow", "cuckoo",
	"dachshund", "deer", "dingo", "dodo", "dog", "dolphin",
	"donkey", "dormouse", "dove", "dragonfly", "duck", "dugong",
	"eagle", "earthworm", "eel", "egret", "elephant", "elk",
	"emu", "falcon", "ferret", "finch", "firefly", "flamingo",
	"flounder", "fox", "frog", "gazelle", "gecko", "gerbil",
	"gibbon", "giraffe", "gnu", "goat", "goldfish", "goose",
	"gopher", "gorilla", "grasshopper", "grouse", "gull", "hamster",
	"hare", "hawk", "hedgehog", "heron", "herring", "hippo",
	"hornet", "horse", "hummingbird", "hyena", "ibex", "iguana",
	"impala", "jackal", "jaguar", "jellyfish", "kangaroo", "kingfisher",
	"kiwi", "koala", "kookaburra", "ladybug", "lemming", "lemur",
	"leopard", "lion", "lizard", "llama", "lobster", "locust",
	"lynx", "macaw", "magpie", "mallard", "manatee", "mandrill",
	"mantis", "marmot", "meerkat", "mink", "mole", "mongoose",
	"monkey", "moose", "mosquito", "moth", "mouse", "mule",
	"narwhal", "newt", "nightingale", "ocelot", "octopus", "okapi",
	"opossum", "orangutan", "orca", "oryx", "ostrich", "otter",
	"owl", "ox", "oyster", "panda", "panther", "parrot",
	"partridge", "peacock", "pelican", "penguin", "pheasant", "pig",
	"pigeon", "piranha", "platypus", "polecat", "pony", "porcupine",
	"porpoise", "possum", "puffin", "puma", "python", "quail",
	"quokka", "rabbit", "raccoon", "ram", "rat", "raven",
	"reindeer", "rhino", "robin", "salamander", "salmon", "sardine",
	"scorpion", "seahorse", "seal", "shark", "sheep", "shrew",
	"shrimp", "skunk", "sloth", "slug", "snail", "snake",
	"sparrow", "spider", "squid", "squirrel", "starfish", "stingray",
	"stork", "swallow", "swan", "tapir", "tarantula", "termite",
	"tiger", "toad", "tortoise", "toucan", "trout", "tuna",
	"turkey", "turtle", "viper", "vulture", "wallaby", "walrus",
	"wasp", "weasel", "whale", "wolf", "wolverine", "wombat",
	"woodpecker", "worm", "yak", "zebra",
}
