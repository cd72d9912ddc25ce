package words

var categories = []Category{
	{
		Id:   "comida",
		Name: "🍕 Comida",
		Words: []string{
			"Pizza", "Hamburguesa", "Sushi", "Tacos", "Pasta", "Helado", "Café", "Chocolate", "Arroz", "Pollo",
			"Ensalada", "Sopa", "Frutas", "Verduras", "Pan", "Queso", "Leche", "Huevo", "Pescado", "Cereal",
			"Galletas", "Miel", "Mermelada", "Tortilla", "Arepa", "Empanada", "Chorizo", "Jamón", "Yogur",
			"Nuggets", "Donas", "Croissant", "Waffles", "Pancakes", "Atún", "Camarones", "Carne", "Cerdo",
			"Chicle", "Churros", "Tamales", "Nachos", "Quesadilla", "Gelatina", "Birria", "Ramen", "Curry",
			"Tempura", "Risotto", "Paella", "Burrito",
		},
	},
	{
		Id:   "animales",
		Name: "🐾 Animales",
		Words: []string{
			"Perro", "Gato", "León", "Elefante", "Delfín", "Águila", "Serpiente", "Tigre", "Panda", "Jirafa",
			"Pingüino", "Conejo", "Mono", "Cebra", "Oso", "Lobo", "Zorro", "Caballo", "Vaca", "Cerdo",
			"Oveja", "Gallina", "Pato", "Pez", "Mariposa", "Abeja", "Hormiga", "Camello", "Hipopótamo",
			"Rinoceronte", "Canguro", "Koala", "Búho", "Loro", "Halcon", "Ardilla", "Ratón", "Murciélago",
			"Tortuga", "Cocodrilo", "Ballena", "Orca", "Cabra", "Burro", "Mapache", "Castor", "Foca", "Caracol",
			"Medusa", "Pulpo",
		},
	},
	{
		Id:   "famosos",
		Name: "⭐ Personas Famosas",
		Words: []string{
			"Messi", "Shakira", "Bad Bunny", "Cristiano Ronaldo", "Beyoncé", "Einstein", "Michael Jackson", "Madonna",
			"Maluma", "J Balvin", "Taylor Swift", "Elon Musk", "Bill Gates", "Oprah Winfrey", "Leonardo DiCaprio",
			"Brad Pitt", "Angelina Jolie", "Rihanna", "Adele", "The Rock", "Jennifer Lopez", "Kendrick Lamar",
			"Kanye West", "Selena Gomez", "Dua Lipa", "Keanu Reeves", "Scarlett Johansson", "Robert Downey Jr",
			"Tom Holland", "Zendaya", "Stan Lee", "Nikola Tesla", "Isaac Newton", "Stephen Hawking", "Mark Zuckerberg",
			"Jeff Bezos", "Post Malone", "Eminem", "Bruce Lee", "Morgan Freeman", "Will Smith", "Chris Evans",
			"Chris Hemsworth", "Emma Watson", "Daniel Radcliffe", "Tom Hanks", "Jim Carrey", "Jackie Chan", "Johnny Depp",
		},
	},
	{
		Id:   "lugares",
		Name: "🌍 Lugares",
		Words: []string{
			"París", "Playa", "Montaña", "Desierto", "Bosque", "Ciudad", "Campo", "Isla", "Río", "Volcán",
			"Cascada", "Lago", "Océano", "Valle", "Cueva", "Castillo", "Pirámide", "Torre", "Puente", "Museo",
			"Teatro", "Estadio", "Aeropuerto", "Estación", "Hospital", "Escuela", "Mercado", "Puerto", "Cementerio",
			"Templo", "Iglesia", "Monasterio", "Catedral", "Carretera", "Plaza", "Parque", "Jardín", "Barrio",
			"Hotel", "Restaurante", "Cafetería", "Biblioteca", "Universidad", "Zoológico", "Acuario", "Montaña nevada",
			"Faro", "Cañón", "Reserva natural", "Selva",
		},
	},
	{
		Id:   "objetos",
		Name: "📱 Objetos",
		Words: []string{
			"Teléfono", "Computadora", "Reloj", "Guitarra", "Libro", "Paraguas", "Zapatos", "Cámara", "Micrófono", "Lentes",
			"Mochila", "Coche", "Bicicleta", "Avión", "Barco", "Tren", "Silla", "Mesa", "Cama", "Armario",
			"Espejo", "Ventana", "Puerta", "Llave", "Moneda", "Billete", "Bolígrafo", "Lápiz", "Cuaderno", "Tijeras",
			"Martillo", "Destornillador", "Tablet", "Mouse", "Teclado", "Televisor", "Frigorífico", "Horno", "Lampara", "Altavoz",
			"Cargador", "Cepillo", "Rastrillo", "Plancha", "Casco", "Mando", "Reloj inteligente", "Drone", "Linterna", "Agenda",
		},
	},
	{
		Id:   "deportes",
		Name: "⚽ Deportes",
		Words: []string{
			"Fútbol", "Baloncesto", "Tenis", "Natación", "Ciclismo", "Boxeo", "Golf", "Béisbol", "Voleibol", "Atletismo",
			"Rugby", "Hockey", "Esquí", "Snowboard", "Surf", "Skateboarding", "Gimnasia", "Judo", "Karate", "Taekwondo",
			"Esgrima", "Tiro con arco", "Bádminton", "Bolos", "Billar", "Parkour", "Escalada", "Patinaje", "Remo", "Canotaje",
			"Triatlón", "Balonmano", "Kickboxing", "Muay Thai", "Softbol", "Críquet", "Ping Pong", "Ajedrez (deporte mental)",
			"Danza deportiva", "Halterofilia", "Lucha libre", "Vela", "Motocross", "Enduro", "Fórmula 1", "Rally", "Parapente", "Kayak",
		},
	},
	{
		Id:   "futbolistas",
		Name: "⚽ Futbolistas",
		Words: []string{
			"Messi", "Cristiano Ronaldo", "Neymar", "Mbappé", "Haaland", "Pelé", "Maradona", "Ronaldinho", "Zidane", "Lewandowski",
			"Benzema", "Salah", "Modric", "De Bruyne", "Van Dijk", "Ramos", "Buffon", "Casillas", "Xavi", "Iniesta",
			"Ronaldo Nazário", "Beckenbauer", "Cruyff", "Platini", "Henry", "Rooney", "Lampard", "Terry", "Kaká", "Drogba",
			"Suárez", "Cavani", "Puyol", "Piqué", "Totti", "Del Piero", "Ibrahimovic", "Reus", "Neuer", "Alisson",
			"Courtois", "Gerrard", "Scholes", "Robben", "Ribery", "Hazard", "Figo", "Raúl", "Zlatan", "Guti",
		},
	},
	{
		Id:   "anime",
		Name: "🎌 Anime",
		Words: []string{
			"Naruto", "Goku", "Luffy", "Ichigo", "Saitama", "Sailor Moon", "Pikachu", "Light Yagami", "Edward Elric", "Eren Yeager",
			"Tanjiro", "Gojo", "Levi Ackerman", "Spike Spiegel", "Kenshin Himura", "Monkey D. Garp", "Vegeta", "Sasuke", "Zoro", "Nami",
			"Robin", "Chopper", "Sanji", "Usopp", "Franky", "Brook", "Jotaro Kujo", "Dio Brando", "Killua", "Gon",
			"Hisoka", "Kurapika", "Megumin", "Aqua", "Kazuma", "Shanks", "Ace", "Bakugo", "Deku", "All Might",
			"Hinata", "Kageyama", "Saitama", "Genos", "Ryuk", "Rem", "Nezuko", "Mikasa", "Rengoku", "Itachi",
		},
	},
	{
		Id:   "peliculas",
		Name: "🎬 Películas",
		Words: []string{
			"Titanic", "Avatar", "Matrix", "Inception", "Avengers", "Toy Story", "Jurassic Park", "Star Wars", "Harry Potter",
			"El Padrino", "Coco", "Frozen", "Gladiator", "Forrest Gump", "Pulp Fiction", "El Señor de los Anillos",
			"Interstellar", "Origen", "Vengadores", "Spider-Man", "Batman", "Superman", "Wonder Woman", "Iron Man",
			"Capitán América", "Thor", "Black Panther", "Doctor Strange", "Shrek", "Up", "Soul", "Cars", "Inside Out",
			"El Rey León", "Terminator", "Rocky", "Rambo", "Mad Max", "Alien", "Depredador", "El Conjuro", "Annabelle",
			"IT", "La La Land", "Dunkerque", "Top Gun", "Misión Imposible", "John Wick",
		},
	},
	{
		Id:   "videojuegos",
		Name: "🎮 Videojuegos",
		Words: []string{
			"Minecraft", "Fortnite", "Mario", "Zelda", "Pokemon", "GTA", "FIFA", "Call of Duty", "League of Legends", "Valorant",
			"Roblox", "Among Us", "Cyberpunk", "The Witcher", "Red Dead Redemption", "Assassin's Creed", "God of War",
			"Halo", "Overwatch", "Apex Legends", "Genshin Impact", "Fall Guys", "Rocket League", "Stardew Valley", "Terraria",
			"Doom", "Resident Evil", "Silent Hill", "Final Fantasy", "Metroid", "Kirby", "Splatoon", "Brawl Stars", "PUBG",
			"Counter Strike", "Half Life", "Portal", "Uncharted", "The Last of Us", "Bloodborne", "Elden Ring", "Dark Souls",
			"Sekiro", "Mortal Kombat", "Tekken", "Street Fighter", "Forza", "Gran Turismo", "Hitman", "Hades",
		},
	},
	{
		Id:   "paises",
		Name: "🌎 Países",
		Words: []string{
			"España", "México", "Argentina", "Colombia", "Chile", "Perú", "Estados Unidos", "Canadá", "Brasil", "Francia",
			"Alemania", "Italia", "Reino Unido", "Japón", "China", "India", "Australia", "Egipto", "Sudáfrica", "Rusia",
			"Corea del Sur", "Portugal", "Grecia", "Turquía", "Suecia", "Noruega", "Finlandia", "Dinamarca", "Suiza", "Austria",
			"Polonia", "Ucrania", "Bolivia", "Ecuador", "Venezuela", "Uruguay", "Paraguay", "Costa Rica", "Panamá", "Cuba",
			"República Dominicana", "Irlanda", "Países Bajos", "Bélgica", "Luxemburgo", "Nueva Zelanda", "Israel", "Tailandia",
			"Filipinas", "Indonesia",
		},
	},
	{
		Id:   "profesiones",
		Name: "🧑‍💼 Profesiones",
		Words: []string{
			"Médico", "Profesor", "Ingeniero", "Abogado", "Arquitecto", "Científico", "Artista", "Músico", "Actor", "Escritor",
			"Chef", "Policía", "Bombero", "Piloto", "Enfermero", "Periodista", "Programador", "Diseñador", "Contador", "Vendedor",
			"Mecánico", "Electricista", "Fontanero", "Carpintero", "Agricultor", "Pescador", "Cajero", "Camarero", "Secretario", "Bibliotecario",
			"Juez", "Psiquiatra", "Dentista", "Paramédico", "Fotógrafo", "Videógrafo", "Panadero", "Carnicero", "Barbero", "Estilista",
			"Tatuador", "Entrenador", "Atleta profesional", "Astronauta", "Economista", "Analista", "Consultor", "Broker", "Notario", "Minero",
		},
	},
	{
		Id:   "instrumentos",
		Name: "🎶 Instrumentos Musicales",
		Words: []string{
			"Guitarra", "Piano", "Batería", "Violín", "Flauta", "Trompeta", "Saxofón", "Clarinete", "Bajo", "Ukelele",
			"Armónica", "Acordeón", "Arpa", "Chelo", "Contrabajo", "Trombón", "Tuba", "Oboe", "Fagot", "Xilófono",
			"Maracas", "Pandereta", "Castañuelas", "Tambor", "Sintetizador", "Lira", "Bandoneón", "Corneta", "Órgano", "Tamborín",
			"Bongos", "Conga", "Cajón peruano", "Banjo", "Mandolina", "Hurdy Gurdy", "Didgeridoo", "Kalimba", "Ocarina", "Gaita",
			"Sitar", "Tabla", "Darbuka", "Koto", "Shamisen", "Vihuela", "Laúd", "Metalófono",
		},
	},
	{
		Id:   "colores",
		Name: "🌈 Colores",
		Words: []string{
			"Rojo", "Azul", "Verde", "Amarillo", "Naranja", "Morado", "Rosa", "Blanco", "Negro", "Gris",
			"Marrón", "Turquesa", "Violeta", "Dorado", "Plateado", "Bronce", "Cian", "Magenta", "Índigo", "Beige",
			"Crema", "Coral", "Lavanda", "Oliva", "Granate", "Mostaza", "Carbón", "Chocolate", "Esmeralda", "Zafiro",
			"Rubí", "Turmalina", "Azabache", "Perla", "Malva", "Aguamarina", "Celeste", "Púrpura", "Champaña", "Caoba",
			"Terracota", "Azul Marino", "Verde Lima", "Rosa Pastel", "Gris Perla", "Borgoña", "Fucsia", "Menta",
		},
	},
	{
		Id:   "frutas",
		Name: "🍎 Frutas",
		Words: []string{
			"Manzana", "Plátano", "Naranja", "Uva", "Fresa", "Mango", "Piña", "Sandía", "Melón", "Cereza",
			"Pera", "Limón", "Kiwi", "Melocotón", "Aguacate", "Coco", "Papaya", "Granada", "Higo", "Mora",
			"Frambuesa", "Arándano", "Mandarina", "Guayaba", "Lichi", "Durazno", "Maracuyá", "Tamarindo", "Toronja", "Ciruela",
			"Banano", "Pitahaya", "Kaki", "Níspero", "Pomelo", "Chirimoya", "Carambolo", "Tuna", "Feijoa", "Jícama",
			"Uchuva", "Guanábana", "Mangostán", "Zapote", "Anona", "Nanche", "Dátil", "Baya de saúco",
		},
	},
	{
		Id:   "verduras",
		Name: "🥦 Verduras",
		Words: []string{
			"Tomate", "Lechuga", "Cebolla", "Zanahoria", "Patata", "Brócoli", "Espinaca", "Pepino", "Pimiento", "Calabacín",
			"Ajo", "Champiñón", "Coliflor", "Berenjena", "Judías Verdes", "Maíz", "Guisantes", "Alcachofa", "Apio", "Rábano",
			"Remolacha", "Puerro", "Repollo", "Col rizada", "Acelga", "Nabo", "Batata", "Yuca", "Jengibre", "Cúrcuma",
			"Chayote", "Okra", "Hinojo", "Rúcula", "Endivia", "Escarola", "Calabaza", "Trufa", "Setas", "Brotes de soja",
			"Kale", "Castaña de agua", "Wasabi", "Daikon", "Pak Choi", "Mostaza verde", "Cardo", "Pepinillo",
		},
	},
	{
		Id:   "bebidas",
		Name: "🥤 Bebidas",
		Words: []string{
			"Agua", "Jugo", "Refresco", "Leche", "Café", "Té", "Cerveza", "Vino", "Batido", "Limonada",
			"Chocolate Caliente", "Malteada", "Gaseosa", "Sidra", "Champán", "Coctel", "Smoothie", "Agua de coco", "Frappe", "Moca",
			"Latte", "Capuchino", "Espresso", "Matcha", "Té negro", "Té verde", "Té oolong", "Agua mineral", "Malta", "Soda",
			"Agua tónica", "Ponche", "Horchata", "Avena", "Michelada", "Sangría", "Tinto de verano", "Kombucha", "Ginger Ale", "Clamato",
			"Blue Lagoon", "Piña colada", "Mojito", "Daiquiri", "Ron Cola", "Whiskey Sour", "Negroni", "Gin Tonic",
		},
	},
	{
		Id:   "ropa",
		Name: "👕 Ropa",
		Words: []string{
			"Camisa", "Pantalón", "Vestido", "Falda", "Chaqueta", "Abrigo", "Sudadera", "Jersey", "Calcetines", "Zapatos",
			"Botas", "Sandalias", "Gorra", "Sombrero", "Bufanda", "Guantes", "Cinturón", "Corbata", "Bañador", "Pijama",
			"Ropa Interior", "Blusa", "Traje", "Vaqueros", "Shorts", "Top", "Chaleco", "Pantuflas", "Malla", "Leggings",
			"Gabardina", "Chubasquero", "Camiseta", "Zapatillas", "Minifalda", "Poncho", "Kimono", "Bata", "Mono", "Overol",
			"Pañuelo", "Turbante", "Medias", "Chaqueta de cuero", "Parka", "Cárdigan", "Crop top", "Jumpsuit",
		},
	},
	{
		Id:   "partes_cuerpo",
		Name: "🧍 Partes del Cuerpo",
		Words: []string{
			"Cabeza", "Ojo", "Nariz", "Boca", "Oreja", "Pelo", "Cuello", "Hombro", "Brazo", "Mano",
			"Dedo", "Pierna", "Pie", "Rodilla", "Codo", "Espalda", "Pecho", "Estómago", "Corazón", "Cerebro",
			"Pulmón", "Hígado", "Riñón", "Piel", "Uña", "Diente", "Lengua", "Cejas", "Pestañas", "Tobillo",
			"Talón", "Muñeca", "Clavícula", "Ombligo", "Cadera", "Muslo", "Pantorrilla", "Barbilla", "Mandíbula", "Frente",
			"Sien", "Costilla", "Columna", "Glúteos", "Nuca", "Diafragma", "Vértebra", "Tórax",
		},
	},
}
