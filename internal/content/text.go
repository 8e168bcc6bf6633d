package content

// #region prologue

// PoliceCall is the prologue answer sequence that ends the story immediately.
var PoliceCall = [4]int{4, 4, 4, 4}

// PrologueDialogues are asked in order, one per prologue step.
var PrologueDialogues = [4]string{
	"You see a message pop up on the app. It says to do crime. What will you do?",
	"This app feels strange... Are you sure about your choice?",
	"The chatroom becomes more intense. Is this your final answer?",
	"Are you sure you want to continue? The app is getting weirder.",
}

// PrologueOptions are the four answers offered at every prologue step.
var PrologueOptions = [4]string{
	"GLADLY!",
	"I'm sorry, I can't do that",
	"Pff, pay me first",
	"I'm calling the police",
}

const (
	PrologueIntro   = "There's suddenly a strange app on your phone. It is a chatroom app. You decide to open it."
	PrologueNote    = "Note that there's a bad ending if all choices are the same (specific choice)."
	PrologueBadLead = "The screen flickers. You feel like something's watching you."
	ProloguePassed  = "Whatever your choices, atleast you're not insisting to call the police 4 times. Let's move on."
)

// #endregion prologue

// #region intro

// Welcome is printed before mode selection.
var Welcome = []string{
	"Welcome to Mystic Messenger Ending Determinant!",
	"No, this program can not predict the real ending of the game.",
	"This program is just a simple project that use system of linear equations to implement a branching storylines",
	"You will be asked to answer a series of questions until the program tell you the ending of the game",
	"Enjoy!",
}

// Explainer is printed between the prologue and affinity collection.
var Explainer = []string{
	"Now, let's simulate the determinant factor of the story.",
	"Each ending have different requirements.",
	"Good Ending requires the player to obtain a specific chatroom and number of guests.",
	"The same goes to Normal Ending but with less guests than Good Ending.",
	"Bad Relationship Ending requires specific chatroom and story",
	"along side with the route character's hearts is less than the others.",
	"Bad Ending requires specific chatroom and story. The player choices also determined",
	"You will be given a set of predefined choices to determine the outcome of the story.",
	"",
	"You can also add hearts to characters.",
	"The character with the highest hearts will determine the route.",
	"",
	"Let's begin!",
}

// #endregion intro
