package lessons

// course is the full Italian beginner course: six units of word
// lessons, each unit closed by a conversation review.
var course = []Lesson{
	{
		ID:    "lesson1",
		Title: "Greetings & Introductions",
		Kind:  KindWordList,
		Words: []WordItem{
			{Italian: "Ciao", English: "Hello/Bye"},
			{Italian: "Buongiorno", English: "Good morning"},
			{Italian: "Buonasera", English: "Good evening"},
			{Italian: "Buonanotte", English: "Good night"},
			{Italian: "Arrivederci", English: "Goodbye"},
			{Italian: "Come stai?", English: "How are you?"},
			{Italian: "Sto bene", English: "I'm fine"},
			{Italian: "Come ti chiami?", English: "What's your name?"},
		},
	},
	{
		ID:    "lesson2",
		Title: "Polite Phrases",
		Kind:  KindWordList,
		Words: []WordItem{
			{Italian: "Grazie", English: "Thank you"},
			{Italian: "Prego", English: "You're welcome"},
			{Italian: "Per favore", English: "Please"},
			{Italian: "Scusa", English: "Excuse me"},
			{Italian: "Mi dispiace", English: "I'm sorry"},
			{Italian: "Sì", English: "Yes"},
			{Italian: "No", English: "No"},
			{Italian: "Va bene", English: "Okay"},
		},
	},
	{
		ID:    "lesson3",
		Title: "Everyday Sentences",
		Kind:  KindWordList,
		Words: []WordItem{
			{Italian: "Mi chiamo", English: "My name is"},
			{Italian: "Non capisco", English: "I don't understand"},
			{Italian: "Parli inglese?", English: "Do you speak English?"},
			{Italian: "Mi piace", English: "I like it"},
			{Italian: "Non mi piace", English: "I don't like it"},
			{Italian: "Vorrei...", English: "I would like..."},
			{Italian: "Perfetto", English: "Perfect"},
			{Italian: "Un momento", English: "One moment"},
		},
	},
	{
		ID:    "lesson4",
		Title: "Colors",
		Kind:  KindWordList,
		Words: []WordItem{
			{Italian: "Rosso", English: "Red"},
			{Italian: "Blu", English: "Blue"},
			{Italian: "Verde", English: "Green"},
			{Italian: "Giallo", English: "Yellow"},
			{Italian: "Nero", English: "Black"},
			{Italian: "Bianco", English: "White"},
			{Italian: "Arancione", English: "Orange"},
			{Italian: "Rosa", English: "Pink"},
		},
	},
	{
		ID:    "lesson5",
		Title: "Numbers 1-10",
		Kind:  KindWordList,
		Words: []WordItem{
			{Italian: "Uno", English: "One"},
			{Italian: "Due", English: "Two"},
			{Italian: "Tre", English: "Three"},
			{Italian: "Quattro", English: "Four"},
			{Italian: "Cinque", English: "Five"},
			{Italian: "Sei", English: "Six"},
			{Italian: "Sette", English: "Seven"},
			{Italian: "Otto", English: "Eight"},
		},
	},
	{
		ID:    "lesson6",
		Title: "Numbers 11-20 & Beyond",
		Kind:  KindWordList,
		Words: []WordItem{
			{Italian: "Nove", English: "Nine"},
			{Italian: "Dieci", English: "Ten"},
			{Italian: "Undici", English: "Eleven"},
			{Italian: "Dodici", English: "Twelve"},
			{Italian: "Venti", English: "Twenty"},
			{Italian: "Trenta", English: "Thirty"},
			{Italian: "Cento", English: "One hundred"},
			{Italian: "Mille", English: "One thousand"},
		},
	},
	{
		ID:    "review1",
		Title: "Unit 1 Review - First Meeting",
		Kind:  KindConversation,
		Lines: []ConversationLine{
			{Speaker: "Maria", Italian: "Buongiorno!", English: "Good morning!"},
			{Speaker: "You", Italian: "Buongiorno! Come stai?", English: "Good morning! How are you?"},
			{Speaker: "Maria", Italian: "Sto bene, grazie! Come ti chiami?", English: "I'm fine, thank you! What's your name?"},
			{Speaker: "You", Italian: "Mi chiamo [Your Name]. Piacere!", English: "My name is [Your Name]. Nice to meet you!"},
			{Speaker: "Maria", Italian: "Piacere! Parli italiano?", English: "Nice to meet you! Do you speak Italian?"},
			{Speaker: "You", Italian: "Un po'. Non capisco tutto.", English: "A little. I don't understand everything."},
			{Speaker: "Maria", Italian: "Va bene! Perfetto!", English: "That's okay! Perfect!"},
			{Speaker: "You", Italian: "Grazie per la pazienza!", English: "Thank you for your patience!"},
			{Speaker: "Maria", Italian: "Prego! A presto!", English: "You're welcome! See you soon!"},
			{Speaker: "You", Italian: "Arrivederci!", English: "Goodbye!"},
		},
	},
	{
		ID:    "review2",
		Title: "Unit 2 Review - At the Market",
		Kind:  KindConversation,
		Lines: []ConversationLine{
			{Speaker: "Vendor", Italian: "Buongiorno! Cosa desidera?", English: "Good morning! What would you like?"},
			{Speaker: "You", Italian: "Vorrei tre mele rosse, per favore.", English: "I would like three red apples, please."},
			{Speaker: "Vendor", Italian: "Perfetto! Altro?", English: "Perfect! Anything else?"},
			{Speaker: "You", Italian: "Sì, cinque banane gialle.", English: "Yes, five yellow bananas."},
			{Speaker: "Vendor", Italian: "Va bene. Sono otto euro.", English: "Okay. That's eight euros."},
			{Speaker: "You", Italian: "Ecco dieci euro.", English: "Here's ten euros."},
			{Speaker: "Vendor", Italian: "Grazie! Due euro di resto.", English: "Thank you! Two euros change."},
			{Speaker: "You", Italian: "Grazie mille! Mi piace il mercato!", English: "Thanks a lot! I like the market!"},
			{Speaker: "Vendor", Italian: "Mi fa piacere! Arrivederci!", English: "I'm glad! Goodbye!"},
			{Speaker: "You", Italian: "Arrivederci!", English: "Goodbye!"},
		},
	},
	{
		ID:    "lesson7",
		Title: "Travel Essentials",
		Kind:  KindWordList,
		Words: []WordItem{
			{Italian: "Aeroporto", English: "Airport"},
			{Italian: "Stazione", English: "Station"},
			{Italian: "Treno", English: "Train"},
			{Italian: "Autobus", English: "Bus"},
			{Italian: "Taxi", English: "Taxi"},
			{Italian: "Biglietto", English: "Ticket"},
			{Italian: "Valigia", English: "Suitcase"},
			{Italian: "Passaporto", English: "Passport"},
		},
	},
	{
		ID:    "lesson8",
		Title: "Directions",
		Kind:  KindWordList,
		Words: []WordItem{
			{Italian: "Dov'è?", English: "Where is?"},
			{Italian: "Destra", English: "Right"},
			{Italian: "Sinistra", English: "Left"},
			{Italian: "Dritto", English: "Straight"},
			{Italian: "Vicino", English: "Near"},
			{Italian: "Lontano", English: "Far"},
			{Italian: "Qui", English: "Here"},
			{Italian: "Là", English: "There"},
		},
	},
	{
		ID:    "lesson9",
		Title: "Places & Travel Phrases",
		Kind:  KindWordList,
		Words: []WordItem{
			{Italian: "Hotel", English: "Hotel"},
			{Italian: "Ristorante", English: "Restaurant"},
			{Italian: "Dov'è il bagno?", English: "Where is the bathroom?"},
			{Italian: "Quanto costa?", English: "How much does it cost?"},
			{Italian: "Aiuto!", English: "Help!"},
			{Italian: "Fermata", English: "Stop"},
			{Italian: "Centro", English: "Downtown"},
			{Italian: "Entrata", English: "Entrance"},
		},
	},
	{
		ID:    "review3",
		Title: "Unit 3 Review - Lost Tourist",
		Kind:  KindConversation,
		Lines: []ConversationLine{
			{Speaker: "You", Italian: "Scusa, dov'è la stazione?", English: "Excuse me, where is the station?"},
			{Speaker: "Local", Italian: "La stazione? È vicino, a sinistra.", English: "The station? It's near, on the left."},
			{Speaker: "You", Italian: "Grazie! Dov'è il biglietto per il treno?", English: "Thank you! Where is the ticket for the train?"},
			{Speaker: "Local", Italian: "All'entrata della stazione. Dritto!", English: "At the station entrance. Straight ahead!"},
			{Speaker: "You", Italian: "Perfetto! Quanto costa il biglietto?", English: "Perfect! How much does the ticket cost?"},
			{Speaker: "Local", Italian: "Cinque euro per il centro.", English: "Five euros for downtown."},
			{Speaker: "You", Italian: "Va bene. Dov'è il bagno?", English: "Okay. Where is the bathroom?"},
			{Speaker: "Local", Italian: "Il bagno è a destra del ristorante.", English: "The bathroom is to the right of the restaurant."},
			{Speaker: "You", Italian: "Grazie mille! Lei è molto gentile!", English: "Thanks a lot! You are very kind!"},
			{Speaker: "Local", Italian: "Prego! Buon viaggio!", English: "You're welcome! Have a good trip!"},
		},
	},
	{
		ID:    "lesson10",
		Title: "Family Members",
		Kind:  KindWordList,
		Words: []WordItem{
			{Italian: "Famiglia", English: "Family"},
			{Italian: "Madre", English: "Mother"},
			{Italian: "Padre", English: "Father"},
			{Italian: "Sorella", English: "Sister"},
			{Italian: "Fratello", English: "Brother"},
			{Italian: "Nonna", English: "Grandmother"},
			{Italian: "Nonno", English: "Grandfather"},
			{Italian: "Figlio", English: "Son"},
		},
	},
	{
		ID:    "lesson11",
		Title: "People & Relationships",
		Kind:  KindWordList,
		Words: []WordItem{
			{Italian: "Figlia", English: "Daughter"},
			{Italian: "Amico", English: "Friend"},
			{Italian: "Amica", English: "Friend)"},
			{Italian: "Marito", English: "Husband"},
			{Italian: "Moglie", English: "Wife"},
			{Italian: "Bambino", English: "Baby"},
			{Italian: "Ragazzo", English: "Boy"},
			{Italian: "Ragazza", English: "Girl"},
		},
	},
	{
		ID:    "lesson12",
		Title: "Describing People",
		Kind:  KindWordList,
		Words: []WordItem{
			{Italian: "Uomo", English: "Man"},
			{Italian: "Donna", English: "Woman"},
			{Italian: "Giovane", English: "Young"},
			{Italian: "Vecchio", English: "Old"},
			{Italian: "Alto", English: "Tall"},
			{Italian: "Basso", English: "Short"},
			{Italian: "Bello", English: "Handsome"},
			{Italian: "Simpatico", English: "Friendly"},
		},
	},
	{
		ID:    "review4",
		Title: "Unit 4 Review - Family Gathering",
		Kind:  KindConversation,
		Lines: []ConversationLine{
			{Speaker: "Sofia", Italian: "Ciao! Questa è la tua famiglia?", English: "Hi! Is this your family?"},
			{Speaker: "You", Italian: "Sì! Questa è mia madre e mio padre.", English: "Yes! This is my mother and my father."},
			{Speaker: "Sofia", Italian: "Sono molto simpatici! E chi è lei?", English: "They are very nice! And who is she?"},
			{Speaker: "You", Italian: "Lei è mia sorella. È giovane e bella.", English: "She is my sister. She is young and beautiful."},
			{Speaker: "Sofia", Italian: "E questo ragazzo alto?", English: "And this tall boy?"},
			{Speaker: "You", Italian: "Lui è mio fratello. Ha venti anni.", English: "He is my brother. He is twenty years old."},
			{Speaker: "Sofia", Italian: "La tua famiglia è grande!", English: "Your family is big!"},
			{Speaker: "You", Italian: "Sì! E questa è mia nonna. Lei è molto vecchia.", English: "Yes! And this is my grandmother. She is very old."},
			{Speaker: "Sofia", Italian: "Che bella famiglia! Il tuo nonno dov'è?", English: "What a beautiful family! Where is your grandfather?"},
			{Speaker: "You", Italian: "Mio nonno è a casa con il bambino.", English: "My grandfather is at home with the baby."},
		},
	},
	{
		ID:    "lesson13",
		Title: "Common Foods",
		Kind:  KindWordList,
		Words: []WordItem{
			{Italian: "il pane", English: "the bread"},
			{Italian: "la pasta", English: "the pasta"},
			{Italian: "la pizza", English: "the pizza"},
			{Italian: "il formaggio", English: "the cheese"},
			{Italian: "il pomodoro", English: "the tomato"},
			{Italian: "l'acqua", English: "the water"},
			{Italian: "il vino", English: "the wine"},
			{Italian: "la carne", English: "the meat"},
			{Italian: "il pesce", English: "the fish"},
			{Italian: "l'insalata", English: "the salad"},
		},
	},
	{
		ID:    "lesson14",
		Title: "At the Restaurant",
		Kind:  KindWordList,
		Words: []WordItem{
			{Italian: "il menu", English: "the menu"},
			{Italian: "il tavolo", English: "the table"},
			{Italian: "il conto", English: "the bill"},
			{Italian: "la prenotazione", English: "the reservation"},
			{Italian: "il cameriere", English: "the waiter"},
			{Italian: "la colazione", English: "the breakfast"},
			{Italian: "il pranzo", English: "the lunch"},
			{Italian: "la cena", English: "the dinner"},
			{Italian: "delizioso", English: "delicious"},
			{Italian: "piccante", English: "spicy"},
		},
	},
	{
		ID:    "lesson15",
		Title: "Drinks & Desserts",
		Kind:  KindWordList,
		Words: []WordItem{
			{Italian: "il caffè", English: "the coffee"},
			{Italian: "il tè", English: "the tea"},
			{Italian: "il latte", English: "the milk"},
			{Italian: "il succo", English: "the juice"},
			{Italian: "la birra", English: "the beer"},
			{Italian: "il gelato", English: "the ice cream"},
			{Italian: "la torta", English: "the cake"},
			{Italian: "i biscotti", English: "the cookies"},
			{Italian: "il dolce", English: "the dessert"},
			{Italian: "lo zucchero", English: "the sugar"},
		},
	},
	{
		ID:    "review5",
		Title: "Unit 5 Review - Restaurant Visit",
		Kind:  KindConversation,
		Lines: []ConversationLine{
			{Speaker: "Waiter", Italian: "Buonasera! Avete una prenotazione?", English: "Good evening! Do you have a reservation?"},
			{Speaker: "You", Italian: "Sì, un tavolo per due persone.", English: "Yes, a table for two people."},
			{Speaker: "Waiter", Italian: "Perfetto! Ecco il menu. Cosa desiderate da bere?", English: "Perfect! Here's the menu. What would you like to drink?"},
			{Speaker: "You", Italian: "Vorrei un bicchiere di vino rosso, per favore.", English: "I would like a glass of red wine, please."},
			{Speaker: "Waiter", Italian: "Ottima scelta! E per mangiare?", English: "Excellent choice! And to eat?"},
			{Speaker: "You", Italian: "Prendo la pasta al pomodoro e l'insalata.", English: "I'll have the pasta with tomato and the salad."},
			{Speaker: "Waiter", Italian: "Benissimo! Volete anche il dolce?", English: "Very good! Would you also like dessert?"},
			{Speaker: "You", Italian: "Sì! Il gelato è delizioso qui?", English: "Yes! Is the ice cream delicious here?"},
			{Speaker: "Waiter", Italian: "È il migliore della città!", English: "It's the best in the city!"},
			{Speaker: "You", Italian: "Perfetto! Poi vorrei il conto, grazie.", English: "Perfect! Then I would like the bill, thank you."},
		},
	},
	{
		ID:    "lesson16",
		Title: "Weather",
		Kind:  KindWordList,
		Words: []WordItem{
			{Italian: "il sole", English: "the sun"},
			{Italian: "la pioggia", English: "the rain"},
			{Italian: "la neve", English: "the snow"},
			{Italian: "il vento", English: "the wind"},
			{Italian: "la nuvola", English: "the cloud"},
			{Italian: "caldo", English: "hot"},
			{Italian: "freddo", English: "cold"},
			{Italian: "bello", English: "beautiful"},
			{Italian: "brutto", English: "ugly"},
			{Italian: "Che tempo fa?", English: "What's the weather like?"},
		},
	},
	{
		ID:    "lesson17",
		Title: "Daily Activities",
		Kind:  KindWordList,
		Words: []WordItem{
			{Italian: "lavorare", English: "to work"},
			{Italian: "studiare", English: "to study"},
			{Italian: "mangiare", English: "to eat"},
			{Italian: "dormire", English: "to sleep"},
			{Italian: "camminare", English: "to walk"},
			{Italian: "correre", English: "to run"},
			{Italian: "nuotare", English: "to swim"},
			{Italian: "leggere", English: "to read"},
			{Italian: "guardare", English: "to watch"},
			{Italian: "ascoltare", English: "to listen"},
		},
	},
	{
		ID:    "lesson18",
		Title: "Time Expressions",
		Kind:  KindWordList,
		Words: []WordItem{
			{Italian: "oggi", English: "today"},
			{Italian: "domani", English: "tomorrow"},
			{Italian: "ieri", English: "yesterday"},
			{Italian: "adesso", English: "now"},
			{Italian: "dopo", English: "after"},
			{Italian: "prima", English: "before"},
			{Italian: "sempre", English: "always"},
			{Italian: "mai", English: "never"},
			{Italian: "presto", English: "early"},
			{Italian: "tardi", English: "late"},
		},
	},
	{
		ID:    "review6",
		Title: "Unit 6 Review - Making Plans",
		Kind:  KindConversation,
		Lines: []ConversationLine{
			{Speaker: "Marco", Italian: "Ciao! Che tempo fa oggi?", English: "Hi! What's the weather like today?"},
			{Speaker: "You", Italian: "C'è il sole! Fa molto caldo.", English: "It's sunny! It's very hot."},
			{Speaker: "Marco", Italian: "Perfetto! Vuoi andare a nuotare?", English: "Perfect! Do you want to go swimming?"},
			{Speaker: "You", Italian: "Sì! Adesso o dopo pranzo?", English: "Yes! Now or after lunch?"},
			{Speaker: "Marco", Italian: "Dopo pranzo. Prima devo studiare.", English: "After lunch. First I need to study."},
			{Speaker: "You", Italian: "Va bene! Io vado a correre oggi.", English: "Okay! I'm going running today."},
			{Speaker: "Marco", Italian: "Bravo! Sempre così attivo!", English: "Good for you! Always so active!"},
			{Speaker: "You", Italian: "Domani invece voglio dormire tardi.", English: "Tomorrow instead I want to sleep late."},
			{Speaker: "Marco", Italian: "Buona idea! E se piove?", English: "Good idea! And if it rains?"},
			{Speaker: "You", Italian: "Se piove, resto a casa a leggere.", English: "If it rains, I'll stay home and read."},
		},
	},
}
